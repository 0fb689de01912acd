package report

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	minColWidth = 10
	maxColWidth = 60
)

// ExcelBuilder is the xlsx SheetBuilder. It works on the first sheet of a new workbook.
type ExcelBuilder struct {
	file   *excelize.File
	sheet  string
	styles map[Style]int
	widths map[int]int
}

func NewExcelBuilder() *ExcelBuilder {
	f := excelize.NewFile()
	return &ExcelBuilder{
		file:   f,
		sheet:  f.GetSheetName(0),
		styles: map[Style]int{},
		widths: map[int]int{},
	}
}

func (b *ExcelBuilder) SetTitle(title string) error {
	if err := b.file.SetSheetName(b.sheet, title); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	b.sheet = title
	return nil
}

// Image anchors a picture at the cell, scaled to the given height in pixels.
func (b *ExcelBuilder) Image(col, row int, path string, height float64) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}

	opts := &excelize.GraphicOptions{ScaleX: 1, ScaleY: 1}
	if height > 0 {
		if h, err := imageHeight(path); err == nil && h > 0 {
			scale := height / float64(h)
			opts.ScaleX, opts.ScaleY = scale, scale
		}
	}
	if err := b.file.AddPicture(b.sheet, cell, path, opts); err != nil {
		return fmt.Errorf("add picture %s: %w", path, err)
	}
	return nil
}

func imageHeight(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, err
	}
	return cfg.Height, nil
}

func (b *ExcelBuilder) MergedLabel(fromCol, toCol, row int, text string, style Style) error {
	from, err := excelize.CoordinatesToCellName(fromCol, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(toCol, row)
	if err != nil {
		return err
	}
	if err := b.file.MergeCell(b.sheet, from, to); err != nil {
		return err
	}
	if err := b.file.SetCellValue(b.sheet, from, text); err != nil {
		return err
	}
	return b.applyStyle(from, to, style)
}

func (b *ExcelBuilder) HeaderRow(row int, labels []string, style Style) error {
	for i, label := range labels {
		if err := b.setCell(i+1, row, label, style); err != nil {
			return err
		}
	}
	return nil
}

func (b *ExcelBuilder) DataRow(row int, cells []Cell) error {
	for i, c := range cells {
		style := Style{}
		if c.Style != nil {
			style = *c.Style
		}
		if err := b.setCell(i+1, row, c.Value, style); err != nil {
			return err
		}
	}
	return nil
}

// TotalRow merges columns 1..labelToCol for the label and writes cells after it.
func (b *ExcelBuilder) TotalRow(row, labelToCol int, label string, cells []Cell, style Style) error {
	if err := b.MergedLabel(1, labelToCol, row, label, style); err != nil {
		return err
	}
	for i, c := range cells {
		cellStyle := style
		if c.Style != nil {
			cellStyle = *c.Style
		}
		if err := b.setCell(labelToCol+1+i, row, c.Value, cellStyle); err != nil {
			return err
		}
	}
	return nil
}

// AutoSize sets every written column to fit its longest value. Merged labels
// are not taken into account.
func (b *ExcelBuilder) AutoSize() error {
	for col, w := range b.widths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		width := w + 2
		if width < minColWidth {
			width = minColWidth
		}
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := b.file.SetColWidth(b.sheet, name, name, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

func (b *ExcelBuilder) Write(w io.Writer) error {
	_, err := b.file.WriteTo(w)
	return err
}

func (b *ExcelBuilder) Close() error {
	return b.file.Close()
}

func (b *ExcelBuilder) setCell(col, row int, value interface{}, style Style) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if value != nil {
		if err := b.file.SetCellValue(b.sheet, cell, value); err != nil {
			return err
		}
	}
	if err := b.applyStyle(cell, cell, style); err != nil {
		return err
	}
	if n := displayWidth(value); n > b.widths[col] {
		b.widths[col] = n
	}
	return nil
}

func (b *ExcelBuilder) applyStyle(from, to string, style Style) error {
	if style == (Style{}) {
		return nil
	}
	id, err := b.styleID(style)
	if err != nil {
		return err
	}
	return b.file.SetCellStyle(b.sheet, from, to, id)
}

func (b *ExcelBuilder) styleID(s Style) (int, error) {
	if id, ok := b.styles[s]; ok {
		return id, nil
	}

	xs := &excelize.Style{}
	if s.Bold || s.Italic || s.Size > 0 || s.Color != "" {
		xs.Font = &excelize.Font{Bold: s.Bold, Italic: s.Italic, Size: s.Size, Color: s.Color}
	}
	if s.Fill != "" {
		xs.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{s.Fill}}
	}
	if s.Border {
		xs.Border = []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		}
	}
	if s.Align != "" {
		xs.Alignment = &excelize.Alignment{Horizontal: s.Align, Vertical: "center"}
	}
	if s.NumFmt != "" {
		numFmt := s.NumFmt
		xs.CustomNumFmt = &numFmt
	}

	id, err := b.file.NewStyle(xs)
	if err != nil {
		return 0, fmt.Errorf("new style: %w", err)
	}
	b.styles[s] = id
	return id, nil
}

// displayWidth approximates how many characters a value takes once rendered.
func displayWidth(v interface{}) int {
	switch t := v.(type) {
	case nil:
		return 0
	case string:
		return utf8.RuneCountInString(t)
	case float64:
		digits := len(strconv.FormatFloat(t, 'f', 0, 64))
		return digits + digits/3 + 2
	case int, int64:
		return len(fmt.Sprint(t))
	default:
		return utf8.RuneCountInString(fmt.Sprint(t))
	}
}
