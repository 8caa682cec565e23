package calculator

// State is the calculator's session state. One instance is created at startup
// and handed to NewMachine; handlers mutate it in place.
type State struct {
	FirstDigit    string
	SecondDigit   string
	AnswerHistory []string
	ValidInput    bool
	Result        string
}

// NewState returns the initial state: empty operands, empty history and
// ValidInput set.
func NewState() *State {
	return &State{
		AnswerHistory: []string{},
		ValidInput:    true,
	}
}

// record stores a successful result. History is append-only.
func (s *State) record(result string) {
	s.Result = result
	s.AnswerHistory = append(s.AnswerHistory, result)
	s.ValidInput = true
}
