package calculator

import "errors"

var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrDivisionByZero = errors.New("division by zero")
	ErrResultTooLarge = errors.New("result too large")
	ErrUnknownRoute   = errors.New("unknown route")
)

// errorKind maps a handler error to the label used on metrics and spans.
func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidOperand):
		return "invalid_operand"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrResultTooLarge):
		return "result_too_large"
	case errors.Is(err, ErrUnknownRoute):
		return "unknown_route"
	default:
		return "internal"
	}
}
