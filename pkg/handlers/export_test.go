package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/goxp/cloud0/ginext"
	"gorm.io/gorm"

	"github.com/banam0503-alt/goc-cafe/pkg/mocks"
	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/report"
	"github.com/banam0503-alt/goc-cafe/pkg/service"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

const testUserID = "27302455-9327-44ab-bb59-36e9b4ebea21"

func newRouter(r *mocks.MockPGInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)

	revenueService := service.NewRevenueService(r, time.UTC)
	orderService := service.NewOrderService(r)
	exportService := service.NewExportService(revenueService, orderService, report.Meta{City: "Hải Phòng"}, time.UTC)

	revenueHandlers := NewRevenueHandlers(revenueService, exportService, time.UTC)
	orderHandlers := NewOrderHandlers(exportService)

	e := gin.New()
	e.GET("/revenue/export", revenueHandlers.ExportRevenue)
	e.GET("/revenue/monthly", ginext.WrapHandler(revenueHandlers.Monthly))
	e.GET("/orders/export", orderHandlers.ExportOrders)
	return e
}

func doGet(e *gin.Engine, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestRevenueHandlers_ExportRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var tx *gorm.DB
	user := map[string]string{
		utils.HEADER_USER_ID:   testUserID,
		utils.HEADER_USER_NAME: url.QueryEscape("Nguyễn Văn A"),
	}

	tests := []struct {
		name     string
		target   string
		headers  map[string]string
		mock     func(r *mocks.MockPGInterface)
		wantCode int
	}{
		{
			name:    "happy flow: download",
			target:  "/revenue/export?month=3&year=2024",
			headers: user,
			mock: func(r *mocks.MockPGInterface) {
				r.EXPECT().GetDailyRevenueRows(gomock.Any(), 3, 2024, tx).Return([]model.DailyRevenueRow{
					{ReportDate: "2024-03-01", TotalOrders: 1, TotalRevenue: decimal.NewFromInt(45000)},
				}, nil)
				r.EXPECT().GetDailyCupRows(gomock.Any(), 3, 2024, tx).Return([]model.DailyCupRow{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "month out of range",
			target:   "/revenue/export?month=13&year=2024",
			headers:  user,
			mock:     func(r *mocks.MockPGInterface) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "year out of range",
			target:   "/revenue/export?month=1&year=1999",
			headers:  user,
			mock:     func(r *mocks.MockPGInterface) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing period",
			target:   "/revenue/export",
			headers:  user,
			mock:     func(r *mocks.MockPGInterface) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no user",
			target:   "/revenue/export?month=3&year=2024",
			mock:     func(r *mocks.MockPGInterface) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "store failure",
			target:  "/revenue/export?month=3&year=2024",
			headers: user,
			mock: func(r *mocks.MockPGInterface) {
				r.EXPECT().GetDailyRevenueRows(gomock.Any(), 3, 2024, tx).Return(nil, context.DeadlineExceeded)
			},
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mocks.NewMockPGInterface(ctrl)
			tt.mock(r)

			w := doGet(newRouter(r), tt.target, tt.headers)
			require.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode != http.StatusOK {
				assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
				return
			}
			assert.Equal(t, utils.XLSX_CONTENT_TYPE, w.Header().Get("Content-Type"))
			assert.Equal(t, `attachment; filename="Bao_Cao_Doanh_Thu_T3_2024.xlsx"`, w.Header().Get("Content-Disposition"))
			assert.Contains(t, w.Header().Get("Cache-Control"), "max-age=0")
			assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
			assert.NotZero(t, w.Body.Len())
		})
	}
}

func TestOrderHandlers_ExportOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var tx *gorm.DB
	r := mocks.NewMockPGInterface(ctrl)
	r.EXPECT().GetAllOrdersForExport(gomock.Any(), tx).Return([]model.OrderListingRow{}, nil)

	w := doGet(newRouter(r), "/orders/export", map[string]string{
		utils.HEADER_USER_ID:    testUserID,
		utils.HEADER_USER_ROLES: "staff",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, utils.XLSX_CONTENT_TYPE, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="tat_ca_don_hang.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
}

func TestRevenueHandlers_Monthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var tx *gorm.DB
	r := mocks.NewMockPGInterface(ctrl)
	r.EXPECT().GetMonthlyRevenue(gomock.Any(), 2, 2024, tx).Return(decimal.NewFromInt(1000), nil)
	r.EXPECT().GetMonthlyStaffCost(gomock.Any(), 2, 2024, tx).Return(decimal.NewFromInt(400), nil)

	w := doGet(newRouter(r), "/revenue/monthly?month=2&year=2024", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"profit"`)
}

type stubExportService struct {
	err error
}

func (s stubExportService) ExportRevenue(ctx context.Context, req model.ExportRevenueRequest) (string, []byte, error) {
	return "", nil, s.err
}

func (s stubExportService) ExportOrders(ctx context.Context, req model.ExportOrdersRequest) (string, []byte, error) {
	return "", nil, s.err
}

func TestExportHandlers_ErrorCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	user := map[string]string{utils.HEADER_USER_ID: testUserID}

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "ginext error keeps its code",
			err:      ginext.NewError(http.StatusBadRequest, utils.ERR_INVALID_MONTH),
			wantCode: http.StatusBadRequest,
			wantBody: utils.ERR_INVALID_MONTH,
		},
		{
			name:     "wrapped ginext error keeps its code",
			err:      fmt.Errorf("render: %w", ginext.NewError(http.StatusNotFound, "not found")),
			wantCode: http.StatusNotFound,
			wantBody: "not found",
		},
		{
			name:     "plain error is a 500",
			err:      context.DeadlineExceeded,
			wantCode: http.StatusInternalServerError,
			wantBody: utils.MessageError()[http.StatusInternalServerError],
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			export := stubExportService{err: tt.err}
			revenueHandlers := NewRevenueHandlers(nil, export, time.UTC)
			orderHandlers := NewOrderHandlers(export)

			e := gin.New()
			e.GET("/revenue/export", revenueHandlers.ExportRevenue)
			e.GET("/orders/export", orderHandlers.ExportOrders)

			for _, target := range []string{"/revenue/export?month=3&year=2024", "/orders/export"} {
				w := doGet(e, target, user)
				assert.Equal(t, tt.wantCode, w.Code, target)
				assert.Contains(t, w.Body.String(), tt.wantBody, target)
			}
		})
	}
}
