package components_test

import (
	"fmt"
	"time"

	"github.com/MikeBiancalana/datekit/internal/datemath"
	"github.com/MikeBiancalana/datekit/internal/picker"
	"github.com/MikeBiancalana/datekit/internal/selection"
	"github.com/MikeBiancalana/datekit/internal/tui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// ExampleDatePicker demonstrates how to use the DatePicker component
func ExampleDatePicker() {
	dp := components.NewDatePicker(picker.Props{ID: "due", Label: "Due date"}, datemath.Date{})
	dp.SetClock(func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) })
	dp.Focus()

	// Open the popover and take today's date
	dp.Open()
	dp.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})

	fmt.Println("Open:", dp.IsOpen())
	fmt.Println("Value:", datemath.FormatDate(dp.Value()))

	// Output:
	// Open: false
	// Value: Jun 15, 2024
}

// ExampleDateRangePicker demonstrates picking a range with two clicks
func ExampleDateRangePicker() {
	rp := components.NewDateRangePicker(picker.Props{ID: "trip"}, selection.Range{})
	rp.SetClock(func() time.Time { return time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC) })
	rp.Focus()
	rp.Open()

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	right := tea.KeyMsg{Type: tea.KeyRight}

	rp.Update(enter)
	fmt.Println("After first click:", selection.Format(rp.Value()))

	for i := 0; i < 5; i++ {
		rp.Update(right)
	}
	rp.Update(enter)
	fmt.Println("After second click:", selection.Format(rp.Value()))
	fmt.Println("Open:", rp.IsOpen())

	// Output:
	// After first click: Mar 5, 2024 -
	// After second click: Mar 5, 2024 - Mar 10, 2024
	// Open: false
}
