package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praslar/lib/common"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/service"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

type RevenueHandlers struct {
	service service.RevenueServiceInterface
	export  service.ExportServiceInterface
	loc     *time.Location
}

func NewRevenueHandlers(service service.RevenueServiceInterface, export service.ExportServiceInterface, loc *time.Location) *RevenueHandlers {
	return &RevenueHandlers{service: service, export: export, loc: loc}
}

func (h *RevenueHandlers) today() time.Time {
	return time.Now().In(h.loc)
}

func (h *RevenueHandlers) Dashboard(r *ginext.Request) (*ginext.Response, error) {
	req := model.DashboardRequest{}
	r.MustBind(&req)

	rs, err := h.service.Dashboard(r.Context(), req)
	if err != nil {
		return nil, err
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}

func (h *RevenueHandlers) Daily(r *ginext.Request) (*ginext.Response, error) {
	log := logger.WithCtx(r.GinCtx, "RevenueHandlers.Daily")

	req := model.DailyStatRequest{}
	r.MustBind(&req)

	date, err := utils.ResolveDate(req.Date, h.today())
	if err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}

	stats, err := h.service.DailyStats(r.Context(), date)
	if err != nil {
		return nil, err
	}
	staffCost, err := h.service.DailyStaffCost(r.Context(), date)
	if err != nil {
		return nil, err
	}

	return &ginext.Response{
		Code: http.StatusOK,
		GeneralBody: &ginext.GeneralBody{
			Data: model.DailyOverview{
				DailyStat: stats,
				StaffCost: staffCost,
				Profit:    stats.Revenue.Sub(staffCost),
			},
		},
	}, nil
}

func (h *RevenueHandlers) Monthly(r *ginext.Request) (*ginext.Response, error) {
	month, year, err := h.bindMonth(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.MonthlyStats(r.Context(), month, year)
	if err != nil {
		return nil, err
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}

func (h *RevenueHandlers) Categories(r *ginext.Request) (*ginext.Response, error) {
	month, year, err := h.bindMonth(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.RevenueByCategory(r.Context(), month, year)
	if err != nil {
		return nil, err
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}

func (h *RevenueHandlers) Breakdown(r *ginext.Request) (*ginext.Response, error) {
	month, year, err := h.bindMonth(r)
	if err != nil {
		return nil, err
	}

	rs, err := h.service.DailyBreakdown(r.Context(), month, year)
	if err != nil {
		return nil, err
	}

	return ginext.NewResponseData(http.StatusOK, rs), nil
}

func (h *RevenueHandlers) bindMonth(r *ginext.Request) (int, int, error) {
	log := logger.WithCtx(r.GinCtx, "RevenueHandlers.bindMonth")

	req := model.MonthlyStatRequest{}
	r.MustBind(&req)

	month, year, err := utils.ResolveMonth(req.Month, req.Year, h.today())
	if err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		return 0, 0, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	return month, year, nil
}

// ExportRevenue streams the monthly report. Not wrapped by ginext since the
// body is a file, errors are still answered as json.
func (h *RevenueHandlers) ExportRevenue(c *gin.Context) {
	log := logger.WithCtx(c, "RevenueHandlers.ExportRevenue")

	exporter, err := utils.CurrentExporter(c.Request)
	if err != nil {
		log.WithError(err).Error("Error when get current user")
		abortJSON(c, http.StatusUnauthorized, utils.MessageError()[http.StatusUnauthorized])
		return
	}

	req := model.ExportRevenueRequest{}
	if err := c.ShouldBindQuery(&req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		abortJSON(c, http.StatusBadRequest, utils.MessageError()[http.StatusBadRequest])
		return
	}
	if err := common.CheckRequireValid(req); err != nil {
		log.WithError(err).Error("error_400: Invalid input")
		abortJSON(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := utils.ValidatePeriod(req.Month, req.Year); err != nil {
		abortJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	req.ExporterName = exporter.Name

	filename, data, err := h.export.ExportRevenue(c.Request.Context(), req)
	if err != nil {
		abortError(c, err)
		return
	}

	sendWorkbook(c, filename, data)
}
