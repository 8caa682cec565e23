package calculator

// Element is one display item on a Page. The set is closed: Text, Image,
// TextBox and Button.
type Element interface {
	element()
}

// Text is static text.
type Text string

// Image references an image by URL. Zero Width/Height means unset.
type Image struct {
	URL    string
	Width  int
	Height int
}

// TextBox is a named text-input field.
type TextBox struct {
	Name         string
	Kind         string
	DefaultValue string
}

// Button navigates to Route when activated.
type Button struct {
	Label string
	Route Route
}

func (Text) element()    {}
func (Image) element()   {}
func (TextBox) element() {}
func (Button) element()  {}

// Page pairs the (possibly mutated) state with the content to display.
type Page struct {
	State   *State
	Content []Element
}

func newTextBox(name, value string) TextBox {
	return TextBox{Name: name, Kind: "text", DefaultValue: value}
}
