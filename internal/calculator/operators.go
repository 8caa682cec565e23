package calculator

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Operator is one of the six binary operations offered on the home page.
type Operator int

const (
	OpAdd Operator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpExponent
)

var operatorInfo = [...]struct {
	name  string
	label string
	route Route
}{
	OpAdd:      {"add", "Addition", RouteAdd},
	OpSubtract: {"subtract", "Subtraction", RouteSubtract},
	OpMultiply: {"multiply", "Multiplication", RouteMultiply},
	OpDivide:   {"divide", "Division", RouteDivide},
	OpModulo:   {"modulo", "Modulo", RouteModulo},
	OpExponent: {"exponent", "Exponential", RouteExponent},
}

// Operators returns every operator in home-page button order.
func Operators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo, OpExponent}
}

func (o Operator) String() string { return operatorInfo[o].name }

// Label is the text shown on the operator's button.
func (o Operator) Label() string { return operatorInfo[o].label }

// Route is the page the operator's button submits to.
func (o Operator) Route() Route { return operatorInfo[o].route }

// DefaultMaxResultBits bounds exponent results when no limit is configured.
const DefaultMaxResultBits = 1 << 20

// operands is validated with go-playground/validator: "number" accepts
// ASCII decimal digits only, so signs and decimal points are rejected.
type operands struct {
	First  string `validate:"required,number"`
	Second string `validate:"required,number"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseOperands validates both operand strings and converts them to integers.
func parseOperands(first, second string) (*big.Int, *big.Int, error) {
	if err := validate.Struct(operands{First: first, Second: second}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, nil, fmt.Errorf("%w: %s %q fails %q", ErrInvalidOperand, strings.ToLower(verrs[0].Field()), verrs[0].Value(), verrs[0].Tag())
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidOperand, err)
	}

	a, ok := new(big.Int).SetString(first, 10)
	if !ok {
		return nil, nil, fmt.Errorf("%w: first %q", ErrInvalidOperand, first)
	}
	b, ok := new(big.Int).SetString(second, 10)
	if !ok {
		return nil, nil, fmt.Errorf("%w: second %q", ErrInvalidOperand, second)
	}
	return a, b, nil
}

// Evaluate validates the operands and applies o to them, returning the
// result as text. maxBits <= 0 disables the exponent size limit.
func (o Operator) Evaluate(first, second string, maxBits int) (string, error) {
	a, b, err := parseOperands(first, second)
	if err != nil {
		return "", err
	}

	switch o {
	case OpAdd:
		return new(big.Int).Add(a, b).String(), nil
	case OpSubtract:
		return new(big.Int).Sub(a, b).String(), nil
	case OpMultiply:
		return new(big.Int).Mul(a, b).String(), nil
	case OpDivide:
		return divide(a, b)
	case OpModulo:
		if b.Sign() == 0 {
			return "", fmt.Errorf("%s %% %s: %w", a, b, ErrDivisionByZero)
		}
		return new(big.Int).Mod(a, b).String(), nil
	case OpExponent:
		if exceedsBits(a, b, maxBits) {
			return "", fmt.Errorf("%s ** %s exceeds %d bits: %w", a, b, maxBits, ErrResultTooLarge)
		}
		return new(big.Int).Exp(a, b, nil).String(), nil
	default:
		return "", fmt.Errorf("operator %d: %w", int(o), ErrUnknownRoute)
	}
}

// divide performs true division and formats the quotient as a float.
func divide(a, b *big.Int) (string, error) {
	if b.Sign() == 0 {
		return "", fmt.Errorf("%s / %s: %w", a, b, ErrDivisionByZero)
	}

	q, _ := new(big.Rat).SetFrac(a, b).Float64()
	if math.IsInf(q, 0) {
		return "", fmt.Errorf("%s / %s overflows float64: %w", a, b, ErrResultTooLarge)
	}
	return FormatFloat(q), nil
}

// exceedsBits reports whether a**b is certain to need more than maxBits bits.
func exceedsBits(a, b *big.Int, maxBits int) bool {
	if maxBits <= 0 || a.BitLen() <= 1 {
		return false
	}
	if !b.IsInt64() {
		return true
	}
	per := int64(a.BitLen() - 1)
	return b.Int64() > int64(maxBits)/per
}

// FormatFloat renders f as the shortest decimal that round-trips. Integral
// values keep a ".0" suffix; magnitudes >= 1e16 or < 1e-4 use exponent
// notation.
func FormatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
