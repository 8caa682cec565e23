package web

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"

	"go-chi-calculator/internal/calculator"
)

const pageTitle = "Calculator"

// PageComponent renders p as a complete HTML document. The content is
// wrapped in a single POST form so operand fields travel with whichever
// button submits it. Image URLs are resolved under imagePrefix.
func PageComponent(p calculator.Page, imagePrefix string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder

		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
		b.WriteString("<title>" + templ.EscapeString(pageTitle) + "</title>\n</head>\n<body>\n")
		b.WriteString("<form method=\"post\">\n")
		for _, el := range p.Content {
			if err := writeElement(&b, el, imagePrefix); err != nil {
				return err
			}
		}
		b.WriteString("</form>\n</body>\n</html>\n")

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeElement(b *strings.Builder, el calculator.Element, imagePrefix string) error {
	switch el := el.(type) {
	case calculator.Text:
		fmt.Fprintf(b, "<p>%s</p>\n", templ.EscapeString(string(el)))
	case calculator.Image:
		fmt.Fprintf(b, "<img src=\"%s\" alt=\"%s\"", templ.EscapeString(imageURL(imagePrefix, el.URL)), templ.EscapeString(el.URL))
		if el.Width > 0 {
			fmt.Fprintf(b, " width=\"%d\"", el.Width)
		}
		if el.Height > 0 {
			fmt.Fprintf(b, " height=\"%d\"", el.Height)
		}
		b.WriteString(">\n")
	case calculator.TextBox:
		kind := el.Kind
		if kind == "" {
			kind = "text"
		}
		fmt.Fprintf(b, "<input type=\"%s\" name=\"%s\" value=\"%s\">\n",
			templ.EscapeString(kind), templ.EscapeString(el.Name), templ.EscapeString(el.DefaultValue))
	case calculator.Button:
		fmt.Fprintf(b, "<button type=\"submit\" formaction=\"%s\">%s</button>\n",
			templ.EscapeString(el.Route.Path()), templ.EscapeString(el.Label))
	default:
		return fmt.Errorf("render: unsupported element %T", el)
	}
	return nil
}

// imageURL joins prefix and name, escaping the name as a single path
// segment ("Math Operations.png" becomes "Math%20Operations.png").
func imageURL(prefix, name string) string {
	if prefix == "" {
		prefix = "/"
	}
	return path.Join(prefix, url.PathEscape(name))
}
