package tui

// LayoutDimensions holds calculated dimensions for the showcase layout
type LayoutDimensions struct {
	// Left column (example list and live picker)
	ListWidth int
	// Right column (description, code snippet, value)
	DetailWidth int
	// Height shared by both columns
	BodyHeight int

	// Bottom bars
	HelpHeight   int // Fixed: 1 line
	StatusHeight int // Fixed: 1 line
}

// CalculateLayout computes pane sizes based on terminal dimensions. The body
// is split 60-40 between the live pickers and the detail column; the range
// picker needs the wider side for its two panels.
func CalculateLayout(termWidth, termHeight int) LayoutDimensions {
	dims := LayoutDimensions{
		HelpHeight:   1,
		StatusHeight: 1,
	}

	dims.BodyHeight = termHeight - dims.HelpHeight - dims.StatusHeight
	if dims.BodyHeight < 0 {
		dims.BodyHeight = 0
	}

	dims.ListWidth = termWidth * 60 / 100
	// Remaining width goes to the detail column (ensures sum = termWidth)
	dims.DetailWidth = termWidth - dims.ListWidth

	if dims.ListWidth < 0 {
		dims.ListWidth = 0
	}
	if dims.DetailWidth < 0 {
		dims.DetailWidth = 0
	}

	return dims
}
