package web

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-chi-calculator/internal/calculator"
)

func renderPage(t *testing.T, p calculator.Page, prefix string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, PageComponent(p, prefix).Render(context.Background(), &buf))
	return buf.String()
}

func TestPageComponentRendersHomePage(t *testing.T) {
	html := renderPage(t, calculator.Index(calculator.NewState()), "/images")

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, `<form method="post">`)
	assert.Contains(t, html, "<p>Welcome to Colin&#39;s Calculator!</p>")
	assert.Contains(t, html, `<img src="/images/Math%20Operations.png" alt="Math Operations.png">`)
	assert.Contains(t, html, `<input type="text" name="first" value="">`)
	assert.Contains(t, html, `<input type="text" name="second" value="">`)
	assert.Contains(t, html, `<button type="submit" formaction="/add_page">Addition</button>`)
	assert.Contains(t, html, `<button type="submit" formaction="/exponent_page">Exponential</button>`)

	// Buttons keep the declared order.
	assert.Less(t, strings.Index(html, "Subtraction"), strings.Index(html, "Multiplication"))
	assert.Less(t, strings.Index(html, "Division"), strings.Index(html, "Modulo"))
}

func TestPageComponentEscapesContent(t *testing.T) {
	page := calculator.Page{Content: []calculator.Element{
		calculator.Text(`<script>alert("x")</script>`),
		calculator.TextBox{Name: "first", DefaultValue: `"><b>`},
		calculator.Image{URL: "a b.png", Width: 40, Height: 20},
	}}

	html := renderPage(t, page, "/static/")

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;")
	assert.Contains(t, html, `<input type="text" name="first" value="&#34;&gt;&lt;b&gt;">`)
	assert.Contains(t, html, `<img src="/static/a%20b.png" alt="a b.png" width="40" height="20">`)
}

func TestPageComponentRejectsUnknownElement(t *testing.T) {
	page := calculator.Page{Content: []calculator.Element{nil}}

	var buf bytes.Buffer
	err := PageComponent(page, "/images").Render(context.Background(), &buf)
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}
