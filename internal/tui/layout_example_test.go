package tui_test

import (
	"fmt"

	"github.com/MikeBiancalana/datekit/internal/tui"
)

// ExampleCalculateLayout demonstrates basic usage of the layout manager
func ExampleCalculateLayout() {
	dims := tui.CalculateLayout(120, 30)

	fmt.Printf("Terminal: 120x30\n")
	fmt.Printf("Pickers: %dx%d\n", dims.ListWidth, dims.BodyHeight)
	fmt.Printf("Details: %dx%d\n", dims.DetailWidth, dims.BodyHeight)
	fmt.Printf("Help bar: height %d\n", dims.HelpHeight)
	fmt.Printf("Status bar: height %d\n", dims.StatusHeight)

	// Output:
	// Terminal: 120x30
	// Pickers: 72x28
	// Details: 48x28
	// Help bar: height 1
	// Status bar: height 1
}
