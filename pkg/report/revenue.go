package report

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

const (
	headerRow     = 7
	revenueLogoPx = 50
	moneyNumFmt   = `#,##0 "₫"`
)

var revenueHeaders = []string{"Ngày", "Số đơn hàng", "Số cốc bán", "Doanh thu (VNĐ)", "Ghi chú"}

var (
	revenueTitleStyle  = Style{Bold: true, Size: 16, Color: "#7A4A2E", Align: AlignCenter}
	taglineStyle       = Style{Italic: true, Align: AlignCenter}
	revenueHeaderStyle = Style{Bold: true, Color: "#FFFFFF", Fill: "#4CAF50", Border: true, Align: AlignCenter}
	centeredCellStyle  = Style{Border: true, Align: AlignCenter}
	moneyCellStyle     = Style{Border: true, NumFmt: moneyNumFmt}
	plainCellStyle     = Style{Border: true}
	revenueTotalStyle  = Style{Bold: true, Size: 12, Color: "#FF0000", Fill: "#FFFFCC", Border: true, Align: AlignCenter}
	revenueTotalMoney  = Style{Bold: true, Size: 12, Color: "#FF0000", Fill: "#FFFFCC", Border: true, NumFmt: moneyNumFmt}
	signDateStyle      = Style{Italic: true, Align: AlignCenter}
	signerStyle        = Style{Bold: true, Align: AlignCenter}
)

func RevenueSheetTitle(month, year int) string {
	return fmt.Sprintf("Doanh thu T%d-%d", month, year)
}

func RevenueFileName(month, year int) string {
	return fmt.Sprintf(utils.REVENUE_REPORT_FILENAME, month, year)
}

// RenderRevenueReport writes the monthly revenue sheet and returns the total
// written on the totals row, which is the sum of the rows as rendered.
func RenderRevenueReport(b SheetBuilder, meta Meta, month, year int, rows []model.DailyBreakdown, preparer string) (decimal.Decimal, error) {
	total := decimal.Zero

	if err := b.SetTitle(RevenueSheetTitle(month, year)); err != nil {
		return total, err
	}
	if err := addLogo(b, meta.LogoPath, revenueLogoPx); err != nil {
		return total, err
	}

	title := fmt.Sprintf("BÁO CÁO DOANH THU THÁNG %d/%d", month, year)
	if err := b.MergedLabel(2, 5, 4, title, revenueTitleStyle); err != nil {
		return total, err
	}
	if err := b.MergedLabel(2, 5, 5, meta.Tagline, taglineStyle); err != nil {
		return total, err
	}
	if err := b.HeaderRow(headerRow, revenueHeaders, revenueHeaderStyle); err != nil {
		return total, err
	}

	row := headerRow + 1
	for _, r := range rows {
		cells := []Cell{
			{Value: r.Date.Format(utils.REPORT_DATE_FORMAT), Style: &centeredCellStyle},
			{Value: r.OrderCount, Style: &centeredCellStyle},
			{Value: r.CupCount, Style: &centeredCellStyle},
			{Value: r.Revenue.InexactFloat64(), Style: &moneyCellStyle},
			{Value: "", Style: &plainCellStyle},
		}
		if err := b.DataRow(row, cells); err != nil {
			return total, err
		}
		total = total.Add(r.Revenue)
		row++
	}

	totalCells := []Cell{
		{Value: total.InexactFloat64(), Style: &revenueTotalMoney},
		{Value: ""},
	}
	if err := b.TotalRow(row, 3, fmt.Sprintf("TỔNG CỘNG THÁNG %d", month), totalCells, revenueTotalStyle); err != nil {
		return total, err
	}

	row += 3
	if err := b.MergedLabel(3, 5, row, signLine(meta), signDateStyle); err != nil {
		return total, err
	}
	row++
	if err := b.MergedLabel(3, 5, row, "Người lập báo cáo", signerStyle); err != nil {
		return total, err
	}
	row += 3
	if err := b.MergedLabel(3, 5, row, preparer, signerStyle); err != nil {
		return total, err
	}

	return total, b.AutoSize()
}

// signLine is the "<city>, ngày dd tháng mm năm yyyy" line above signatures.
func signLine(meta Meta) string {
	t := meta.GeneratedAt
	return fmt.Sprintf("%s, ngày %02d tháng %02d năm %d", meta.City, t.Day(), int(t.Month()), t.Year())
}

// addLogo skips the picture when the asset is not on disk.
func addLogo(b SheetBuilder, path string, height float64) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return b.Image(1, 1, path, height)
}
