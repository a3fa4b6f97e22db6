package render_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/magicsquare/render"
	"github.com/katalvlaran/magicsquare/square"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHTML_EmptyGrid verifies the empty-grid → empty-string contract.
func TestHTML_EmptyGrid(t *testing.T) {
	assert.Equal(t, "", render.HTML(square.Grid{}))
	assert.Equal(t, "", render.HTML(nil))
	assert.Equal(t, "", render.Text(nil))
}

// TestHTML_Plain verifies the bare fragment shape and cell order.
func TestHTML_Plain(t *testing.T) {
	got := render.HTML(square.Grid{{1, 2}, {3, 4}})
	want := "<table>\n" +
		"<tr><td>1</td><td>2</td></tr>\n" +
		"<tr><td>3</td><td>4</td></tr>\n" +
		"</table>"
	require.Equal(t, want, got)
}

// TestHTML_Options verifies the default-style attributes and class
// escaping.
func TestHTML_Options(t *testing.T) {
	got := render.HTML(square.Grid{{1}}, render.WithDefaultStyle())
	assert.True(t, strings.HasPrefix(got, `<table border="1" cellpadding="4" cellspacing="0">`), "got %q", got)

	got = render.HTML(square.Grid{{1}}, render.WithClass(`magic"grid`))
	assert.Contains(t, got, `class="magic&#34;grid"`)

	got = render.HTML(square.Grid{{1}}, render.WithClass("magic"), render.WithDefaultStyle())
	assert.True(t, strings.HasPrefix(got, `<table class="magic" border="1"`), "got %q", got)
}

// TestHTML_GeneratedSquare verifies every generated cell value appears as
// its own <td>.
func TestHTML_GeneratedSquare(t *testing.T) {
	g, err := square.Generate(4)
	require.NoError(t, err)

	got := render.HTML(g)
	assert.Equal(t, 4, strings.Count(got, "<tr>"))
	assert.Equal(t, 16, strings.Count(got, "<td>"))
	assert.Contains(t, got, "<td>16</td>")
}

// TestText_Alignment verifies column alignment pads to the widest value.
func TestText_Alignment(t *testing.T) {
	got := render.Text(square.Grid{{1, 15}, {12, 6}})
	want := " 1 15\n12  6\n"
	require.Equal(t, want, got)
}
