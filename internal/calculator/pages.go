package calculator

import (
	"fmt"
	"strings"
)

const (
	welcomeText      = "Welcome to Colin's Calculator!"
	homeImage        = "Math Operations.png"
	errorImage       = "error.png"
	invalidText      = "Invalid Input! You may only input numbers. Try Again."
	historyHeader    = "Your answer history is: "
	answerPrefix     = "The answer is: "
	historySeparator = ", "
)

// Index renders the operand form and one button per operator. It does not
// modify s.
func Index(s *State) Page {
	content := []Element{
		Text(welcomeText),
		Image{URL: homeImage},
		Text("Input your first number"),
		newTextBox("first", s.FirstDigit),
		Text("Input your second number"),
		newTextBox("second", s.SecondDigit),
		Text("What operator would you like to use?"),
	}
	for _, op := range Operators() {
		content = append(content, Button{Label: op.Label(), Route: op.Route()})
	}
	return Page{State: s, Content: content}
}

// Operate applies op to the submitted operands using the default result
// limit. See operate.
func Operate(s *State, op Operator, first, second string) (Page, error) {
	return operate(s, op, first, second, DefaultMaxResultBits)
}

// operate validates and evaluates first op second. On success the result is
// recorded in s and the answer page returned. On failure s.ValidInput is
// cleared, Result and AnswerHistory are left alone, and the Invalid page is
// returned together with the cause.
func operate(s *State, op Operator, first, second string, maxBits int) (Page, error) {
	result, err := op.Evaluate(first, second, maxBits)
	if err != nil {
		s.ValidInput = false
		return Invalid(s), fmt.Errorf("%s: %w", op, err)
	}

	s.record(result)
	return Page{State: s, Content: []Element{
		Text(answerPrefix + s.Result),
		Button{Label: "View Answer History", Route: RouteHistory},
		Button{Label: "Restart here", Route: RouteIndex},
	}}, nil
}

// History lists every recorded answer, each followed by ", ".
func History(s *State) Page {
	var b strings.Builder
	b.WriteString(historyHeader)
	for _, answer := range s.AnswerHistory {
		b.WriteString(answer)
		b.WriteString(historySeparator)
	}
	return Page{State: s, Content: []Element{
		Text(b.String()),
		Button{Label: "Restart here", Route: RouteIndex},
	}}
}

// Invalid is the error page shown after a failed computation.
func Invalid(s *State) Page {
	return Page{State: s, Content: []Element{
		Text(invalidText),
		Image{URL: errorImage},
		Button{Label: "Retry", Route: RouteIndex},
	}}
}
