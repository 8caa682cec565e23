package calculator

import "fmt"

// Route identifies a page endpoint.
type Route int

const (
	RouteIndex Route = iota
	RouteAdd
	RouteSubtract
	RouteMultiply
	RouteDivide
	RouteModulo
	RouteExponent
	RouteHistory
	RouteInvalid
)

var routeNames = [...]string{
	RouteIndex:    "index",
	RouteAdd:      "add_page",
	RouteSubtract: "subtraction_page",
	RouteMultiply: "multiply_page",
	RouteDivide:   "division_page",
	RouteModulo:   "modulo_page",
	RouteExponent: "exponent_page",
	RouteHistory:  "get_history",
	RouteInvalid:  "invalid",
}

func (r Route) valid() bool {
	return r >= RouteIndex && r <= RouteInvalid
}

// String returns the route name, e.g. "add_page".
func (r Route) String() string {
	if !r.valid() {
		return fmt.Sprintf("route(%d)", int(r))
	}
	return routeNames[r]
}

// Path returns the URL path the route is served on. The index is "/".
func (r Route) Path() string {
	if r == RouteIndex {
		return "/"
	}
	return "/" + r.String()
}
