package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

func strPtr(s string) *string { return &s }

func TestRenderOrderListing(t *testing.T) {
	approved := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)
	rows := []model.OrderListingRow{
		{
			ID:           12,
			CustomerName: strPtr("Trần Thị B"),
			TotalPrice:   decimal.NewFromInt(50000),
			Status:       utils.ORDER_STATUS_COMPLETED,
			StaffName:    strPtr("Lê C"),
			ApprovedAt:   &approved,
			CreatedAt:    time.Date(2024, 3, 2, 7, 45, 10, 0, time.UTC),
		},
		{
			ID:         11,
			TotalPrice: decimal.NewFromInt(1250000),
			Status:     utils.ORDER_STATUS_PENDING,
			CreatedAt:  time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC),
		},
	}

	f := render(t, func(b SheetBuilder) error {
		return RenderOrderListing(b, testMeta, rows, "Phạm D", "staff")
	})
	sheet := OrderListingSheetTitle

	assert.Equal(t, "GÓC CAFE", raw(t, f, sheet, "A4"))
	assert.Equal(t, "Hải Phòng, ngày 05 tháng 04 năm 2024", raw(t, f, sheet, "A5"))
	assert.Equal(t, "ID đơn", raw(t, f, sheet, "A7"))
	assert.Equal(t, "Lý do hủy", raw(t, f, sheet, "H7"))

	assert.Equal(t, "12", raw(t, f, sheet, "A8"))
	assert.Equal(t, "Trần Thị B", raw(t, f, sheet, "B8"))
	assert.Equal(t, "50.000 ₫", raw(t, f, sheet, "C8"))
	assert.Equal(t, "COMPLETED", raw(t, f, sheet, "D8"))
	assert.Equal(t, "Lê C", raw(t, f, sheet, "E8"))
	assert.Equal(t, "2024-03-02 08:00:00", raw(t, f, sheet, "F8"))
	assert.Equal(t, "2024-03-02 07:45:10", raw(t, f, sheet, "G8"))
	assert.Equal(t, utils.EMPTY_PLACEHOLDER, raw(t, f, sheet, "H8"))

	// missing optional fields
	assert.Equal(t, utils.EMPTY_PLACEHOLDER, raw(t, f, sheet, "B9"))
	assert.Equal(t, "1.250.000 ₫", raw(t, f, sheet, "C9"))
	assert.Equal(t, utils.EMPTY_PLACEHOLDER, raw(t, f, sheet, "E9"))
	assert.Equal(t, utils.EMPTY_PLACEHOLDER, raw(t, f, sheet, "F9"))

	assert.Equal(t, "QUẢN LÝ ĐƠN HÀNG", raw(t, f, sheet, "A12"))
	assert.Equal(t, "Người xuất file: Phạm D (staff)", raw(t, f, sheet, "F14"))

	merges := mergedRanges(t, f, sheet)
	for _, want := range []string{"A4:H4", "A5:H5", "A12:H12", "F14:H14"} {
		assert.Contains(t, merges, want)
	}
}

func TestRenderOrderListing_NoOrders(t *testing.T) {
	f := render(t, func(b SheetBuilder) error {
		return RenderOrderListing(b, testMeta, nil, "Quản trị viên", "admin")
	})
	sheet := OrderListingSheetTitle

	v, err := f.GetCellValue(sheet, "A8")
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, "QUẢN LÝ ĐƠN HÀNG", raw(t, f, sheet, "A10"))
	assert.Equal(t, "Người xuất file: Quản trị viên (admin)", raw(t, f, sheet, "F12"))
}
