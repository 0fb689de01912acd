package report

import (
	"fmt"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

const (
	OrderListingSheetTitle = "Tất cả đơn hàng"
	orderLogoPx            = 80
)

var orderHeaders = []string{"ID đơn", "Khách hàng", "Tổng tiền", "Trạng thái", "Người xử lý", "Ngày duyệt", "Ngày tạo", "Lý do hủy"}

var (
	orgTitleStyle     = Style{Bold: true, Size: 16, Align: AlignCenter}
	orderHeaderStyle  = Style{Bold: true, Fill: "#E9ECEF"}
	orderFooterStyle  = Style{Bold: true, Align: AlignCenter}
	exporterLineStyle = Style{Bold: true, Italic: true}
)

// RenderOrderListing writes every order as a flat table. No totals row.
func RenderOrderListing(b SheetBuilder, meta Meta, rows []model.OrderListingRow, exporterName, exporterRole string) error {
	lastCol := len(orderHeaders)

	if err := b.SetTitle(OrderListingSheetTitle); err != nil {
		return err
	}
	if err := addLogo(b, meta.LogoPath, orderLogoPx); err != nil {
		return err
	}
	if err := b.MergedLabel(1, lastCol, 4, meta.OrgName, orgTitleStyle); err != nil {
		return err
	}
	if err := b.MergedLabel(1, lastCol, 5, signLine(meta), signDateStyle); err != nil {
		return err
	}
	if err := b.HeaderRow(headerRow, orderHeaders, orderHeaderStyle); err != nil {
		return err
	}

	row := headerRow + 1
	for _, o := range rows {
		if err := b.DataRow(row, orderCells(o)); err != nil {
			return err
		}
		row++
	}

	footer := row + 2
	if err := b.MergedLabel(1, lastCol, footer, "QUẢN LÝ ĐƠN HÀNG", orderFooterStyle); err != nil {
		return err
	}
	footer += 2
	exporter := fmt.Sprintf("Người xuất file: %s (%s)", exporterName, exporterRole)
	if err := b.MergedLabel(6, lastCol, footer, exporter, exporterLineStyle); err != nil {
		return err
	}

	return b.AutoSize()
}

func orderCells(o model.OrderListingRow) []Cell {
	approvedAt := utils.EMPTY_PLACEHOLDER
	if o.ApprovedAt != nil {
		approvedAt = o.ApprovedAt.Format(utils.TIME_FORMAT_FOR_EXPORT)
	}
	return []Cell{
		{Value: o.ID},
		{Value: utils.StrOrPlaceholder(o.CustomerName)},
		{Value: utils.StrDelimitForSum(o.TotalPrice, utils.CURRENCY_SYMBOL)},
		{Value: o.Status},
		{Value: utils.StrOrPlaceholder(o.StaffName)},
		{Value: approvedAt},
		{Value: o.CreatedAt.Format(utils.TIME_FORMAT_FOR_EXPORT)},
		{Value: utils.StrOrPlaceholder(o.RejectReason)},
	}
}
