// Package report lays out the downloadable spreadsheets. Renderers only talk
// to a SheetBuilder, cell coordinates and styling live in the backend.
package report

import (
	"io"
	"time"
)

const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Style is a backend neutral cell style. Colors are RRGGBB hex with a leading #.
type Style struct {
	Bold   bool
	Italic bool
	Size   float64
	Color  string
	Fill   string
	Border bool
	Align  string
	NumFmt string
}

// Cell is one value of a data or total row. A nil Style inherits the row style.
type Cell struct {
	Value interface{}
	Style *Style
}

// SheetBuilder writes a single sheet. Rows and columns are 1-based.
type SheetBuilder interface {
	SetTitle(title string) error
	Image(col, row int, path string, height float64) error
	MergedLabel(fromCol, toCol, row int, text string, style Style) error
	HeaderRow(row int, labels []string, style Style) error
	DataRow(row int, cells []Cell) error
	TotalRow(row, labelToCol int, label string, cells []Cell, style Style) error
	AutoSize() error
	Write(w io.Writer) error
}

// Meta is the letterhead shared by every report.
type Meta struct {
	OrgName     string
	Tagline     string
	City        string
	LogoPath    string
	GeneratedAt time.Time
}
