package render_test

import (
	"fmt"

	"github.com/katalvlaran/magicsquare/render"
	"github.com/katalvlaran/magicsquare/square"
)

// ExampleText renders the canonical 4×4 square for a terminal.
func ExampleText() {
	g, _ := square.Generate(4)
	fmt.Print(render.Text(g))

	// Output:
	//  1 15 14  4
	// 12  6  7  9
	//  8 10 11  5
	// 13  3  2 16
}

// ExampleHTML embeds a generated square into a page fragment with a CSS
// class.
func ExampleHTML() {
	fmt.Println(render.HTML(square.Grid{{1, 2}, {3, 4}}, render.WithClass("magic")))

	// Output:
	// <table class="magic">
	// <tr><td>1</td><td>2</td></tr>
	// <tr><td>3</td><td>4</td></tr>
	// </table>
}
