package report

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var testMeta = Meta{
	OrgName:     "GÓC CAFE",
	Tagline:     "Góc Cà Phê - Hệ thống quản lý",
	City:        "Hải Phòng",
	GeneratedAt: time.Date(2024, 4, 5, 9, 30, 0, 0, time.UTC),
}

func raw(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func mergedRanges(t *testing.T, f *excelize.File, sheet string) []string {
	t.Helper()
	merges, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	rs := make([]string, 0, len(merges))
	for _, m := range merges {
		rs = append(rs, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	return rs
}

// render runs fn against a fresh builder and reopens the produced workbook.
func render(t *testing.T, fn func(b SheetBuilder) error) *excelize.File {
	t.Helper()
	b := NewExcelBuilder()
	defer b.Close()

	require.NoError(t, fn(b))

	var buf bytes.Buffer
	require.NoError(t, b.Write(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func writeLogo(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	img.Set(1, 1, color.RGBA{R: 122, G: 74, B: 46, A: 255})

	path := filepath.Join(t.TempDir(), "logo.png")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(out, img))
	require.NoError(t, out.Close())
	return path
}

func TestExcelBuilder_RowsAndStyles(t *testing.T) {
	bold := Style{Bold: true}
	f := render(t, func(b SheetBuilder) error {
		if err := b.SetTitle("Sheet test"); err != nil {
			return err
		}
		if err := b.HeaderRow(2, []string{"a", "b"}, bold); err != nil {
			return err
		}
		if err := b.DataRow(3, []Cell{{Value: int64(7)}, {Value: "một chuỗi rất dài để đo độ rộng"}}); err != nil {
			return err
		}
		if err := b.TotalRow(4, 1, "Tổng", []Cell{{Value: 12.5}}, bold); err != nil {
			return err
		}
		return b.AutoSize()
	})

	assert.Equal(t, []string{"Sheet test"}, f.GetSheetList())
	assert.Equal(t, "a", raw(t, f, "Sheet test", "A2"))
	assert.Equal(t, "7", raw(t, f, "Sheet test", "A3"))
	assert.Equal(t, "Tổng", raw(t, f, "Sheet test", "A4"))
	assert.Equal(t, "12.5", raw(t, f, "Sheet test", "B4"))

	width, err := f.GetColWidth("Sheet test", "B")
	require.NoError(t, err)
	assert.Greater(t, width, float64(minColWidth))
}

func TestExcelBuilder_StyleCache(t *testing.T) {
	b := NewExcelBuilder()
	defer b.Close()

	s := Style{Bold: true, Fill: "#4CAF50", Border: true, Align: AlignCenter, NumFmt: moneyNumFmt}
	id1, err := b.styleID(s)
	require.NoError(t, err)
	id2, err := b.styleID(s)
	require.NoError(t, err)
	id3, err := b.styleID(Style{Italic: true})
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.NotEqual(t, id1, id3)
}

func TestExcelBuilder_Image(t *testing.T) {
	logo := writeLogo(t)
	f := render(t, func(b SheetBuilder) error {
		return b.Image(1, 1, logo, 50)
	})

	pics, err := f.GetPictures(f.GetSheetName(0), "A1")
	require.NoError(t, err)
	assert.Len(t, pics, 1)
}

func TestAddLogo_MissingFileIsSkipped(t *testing.T) {
	f := render(t, func(b SheetBuilder) error {
		return addLogo(b, filepath.Join(t.TempDir(), "missing.jpg"), 50)
	})

	pics, err := f.GetPictures(f.GetSheetName(0), "A1")
	require.NoError(t, err)
	assert.Empty(t, pics)
}
