package views

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

// Placeholder colours
const (
	placeholderFill = "#6366f1"
	placeholderText = "#ffffff"
)

// Placeholder returns an SVG data URI labelled with title. It stands in for
// projects without images and is the same for the same inputs.
func Placeholder(title string, width, height int) template.URL {
	label := template.HTMLEscapeString(title)
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<rect width="100%%" height="100%%" fill="%s"/>`+
			`<text x="50%%" y="50%%" fill="%s" font-family="sans-serif" font-size="%d" text-anchor="middle" dominant-baseline="middle">%s</text>`+
			`</svg>`,
		width, height, width, height, placeholderFill, placeholderText, max(12, height/12), label)
	// PathEscape keeps spaces as %20 which data URIs require
	return template.URL("data:image/svg+xml;charset=utf-8," + strings.ReplaceAll(url.PathEscape(svg), "+", "%2B"))
}
