package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/katalvlaran/magicsquare/square"
)

// Option adjusts HTML rendering.
type Option func(*config)

// config is the resolved rendering configuration.
type config struct {
	defaultStyle bool
	cssClass     string
}

// WithDefaultStyle emits a self-contained bordered table
// (border/cellpadding attributes), so the fragment displays reasonably
// without any stylesheet.
func WithDefaultStyle() Option {
	return func(c *config) { c.defaultStyle = true }
}

// WithClass sets a CSS class on the <table> element. The name is
// HTML-escaped; styling is then entirely up to the embedding document.
func WithClass(name string) Option {
	return func(c *config) { c.cssClass = name }
}

// HTML renders grid as an HTML <table> fragment, rows then cells in grid
// order. An empty grid renders as the empty string.
// Complexity: O(n²) time and output size.
func HTML(grid square.Grid, opts ...Option) string {
	if len(grid) == 0 {
		return ""
	}
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	var b strings.Builder
	b.WriteString("<table")
	if cfg.cssClass != "" {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(cfg.cssClass))
		b.WriteString(`"`)
	}
	if cfg.defaultStyle {
		b.WriteString(` border="1" cellpadding="4" cellspacing="0"`)
	}
	b.WriteString(">\n")
	for _, row := range grid {
		b.WriteString("<tr>")
		for _, v := range row {
			b.WriteString("<td>")
			b.WriteString(strconv.Itoa(v))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>")

	return b.String()
}

// Text renders grid as a right-aligned plain-text block, one row per line.
// An empty grid renders as the empty string.
// Complexity: O(n²) time and output size.
func Text(grid square.Grid) string {
	if len(grid) == 0 {
		return ""
	}
	width := 1
	for _, row := range grid {
		for _, v := range row {
			if l := len(strconv.Itoa(v)); l > width {
				width = l
			}
		}
	}

	var b strings.Builder
	for _, row := range grid {
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			s := strconv.Itoa(v)
			for pad := width - len(s); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
