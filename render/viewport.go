package render

import (
	"math"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/orbit"
)

// Viewport maps plot coordinates (AU, y up) to screen cells (y down).
// Columns per AU is CellAspect times rows per AU so circles stay round.
type Viewport struct {
	// Data box in screen cells, covering [-Extent, Extent] on both axes
	X, Y          int
	Width, Height int

	Extent float64

	colsPerAU float64
	rowsPerAU float64
	cx, cy    float64
}

// NewViewport fits [-extent, extent]² into the area (x, y, w, h) with equal aspect,
// centering the resulting data box inside the area
func NewViewport(x, y, w, h int, extent float64) Viewport {
	if w < 1 || h < 1 || !(extent > 0) {
		return Viewport{X: x, Y: y, Extent: extent}
	}

	colsPerAU := float64(w-1) / (2 * extent)
	rowsPerAU := float64(h-1) / (2 * extent)
	if colsPerAU > rowsPerAU*constants.CellAspect {
		colsPerAU = rowsPerAU * constants.CellAspect
	} else {
		rowsPerAU = colsPerAU / constants.CellAspect
	}

	boxW := int(math.Round(2*extent*colsPerAU)) + 1
	boxH := int(math.Round(2*extent*rowsPerAU)) + 1
	boxW = min(boxW, w)
	boxH = min(boxH, h)
	boxX := x + (w-boxW)/2
	boxY := y + (h-boxH)/2

	return Viewport{
		X:         boxX,
		Y:         boxY,
		Width:     boxW,
		Height:    boxH,
		Extent:    extent,
		colsPerAU: colsPerAU,
		rowsPerAU: rowsPerAU,
		cx:        float64(boxX) + float64(boxW-1)/2,
		cy:        float64(boxY) + float64(boxH-1)/2,
	}
}

// Valid reports whether the viewport has a drawable area
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 && v.colsPerAU > 0
}

// ColsPerAU returns horizontal cells per AU
func (v Viewport) ColsPerAU() float64 {
	return v.colsPerAU
}

// RowsPerAU returns vertical cells per AU
func (v Viewport) RowsPerAU() float64 {
	return v.rowsPerAU
}

// Project converts plot coordinates to the nearest screen cell
func (v Viewport) Project(p orbit.Point) (int, int) {
	sx := int(math.Round(v.cx + p.X*v.colsPerAU))
	sy := int(math.Round(v.cy - p.Y*v.rowsPerAU))
	return sx, sy
}

// Unproject converts a screen cell center back to plot coordinates
func (v Viewport) Unproject(sx, sy int) orbit.Point {
	if !v.Valid() {
		return orbit.Point{}
	}
	return orbit.Point{
		X: (float64(sx) - v.cx) / v.colsPerAU,
		Y: (v.cy - float64(sy)) / v.rowsPerAU,
	}
}

// Contains reports whether a screen cell is inside the data box
func (v Viewport) Contains(sx, sy int) bool {
	return sx >= v.X && sx < v.X+v.Width && sy >= v.Y && sy < v.Y+v.Height
}

// Center returns the screen cell of the plot origin
func (v Viewport) Center() (int, int) {
	return v.Project(orbit.Point{})
}

// Right and Bottom return the last column and row of the data box
func (v Viewport) Right() int  { return v.X + v.Width - 1 }
func (v Viewport) Bottom() int { return v.Y + v.Height - 1 }
