package service

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/report"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

// ExportService renders the downloadable workbooks fully in memory, so a
// failed render never hands out a partial file.
type ExportService struct {
	revenue RevenueServiceInterface
	orders  OrderServiceInterface
	meta    report.Meta
	loc     *time.Location
	now     func() time.Time
}

func NewExportService(revenue RevenueServiceInterface, orders OrderServiceInterface, meta report.Meta, loc *time.Location) ExportServiceInterface {
	return &ExportService{revenue: revenue, orders: orders, meta: meta, loc: loc, now: time.Now}
}

type ExportServiceInterface interface {
	ExportRevenue(ctx context.Context, req model.ExportRevenueRequest) (filename string, data []byte, err error)
	ExportOrders(ctx context.Context, req model.ExportOrdersRequest) (filename string, data []byte, err error)
}

func (s *ExportService) ExportRevenue(ctx context.Context, req model.ExportRevenueRequest) (string, []byte, error) {
	log := logger.WithCtx(ctx, "ExportService.ExportRevenue").WithField("req", req)

	if err := utils.ValidatePeriod(req.Month, req.Year); err != nil {
		return "", nil, ginext.NewError(http.StatusBadRequest, err.Error())
	}

	rows, err := s.revenue.DailyBreakdown(ctx, req.Month, req.Year)
	if err != nil {
		return "", nil, err
	}

	name := req.ExporterName
	if name == "" {
		name = utils.DEFAULT_EXPORTER_NAME
	}

	b := report.NewExcelBuilder()
	defer b.Close()

	total, err := report.RenderRevenueReport(b, s.letterhead(), req.Month, req.Year, rows, name)
	if err != nil {
		log.WithError(err).Error("error_500: render revenue report")
		return "", nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	data, err := s.write(b)
	if err != nil {
		log.WithError(err).Error("error_500: write revenue report")
		return "", nil, err
	}

	log.WithField("days", len(rows)).WithField("total", total.String()).Info("revenue report exported")
	return report.RevenueFileName(req.Month, req.Year), data, nil
}

func (s *ExportService) ExportOrders(ctx context.Context, req model.ExportOrdersRequest) (string, []byte, error) {
	log := logger.WithCtx(ctx, "ExportService.ExportOrders").WithField("req", req)

	orders, err := s.orders.GetAllOrdersForExport(ctx)
	if err != nil {
		return "", nil, err
	}

	name, role := req.ExporterName, req.ExporterRole
	if name == "" {
		name = utils.DEFAULT_EXPORTER_NAME
	}
	if role == "" {
		role = utils.DEFAULT_EXPORTER_ROLE
	}

	b := report.NewExcelBuilder()
	defer b.Close()

	if err := report.RenderOrderListing(b, s.letterhead(), orders, name, role); err != nil {
		log.WithError(err).Error("error_500: render order listing")
		return "", nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	data, err := s.write(b)
	if err != nil {
		log.WithError(err).Error("error_500: write order listing")
		return "", nil, err
	}

	return utils.ORDER_LISTING_FILENAME, data, nil
}

func (s *ExportService) letterhead() report.Meta {
	meta := s.meta
	meta.GeneratedAt = s.now().In(s.loc)
	return meta
}

func (s *ExportService) write(b report.SheetBuilder) ([]byte, error) {
	var buf bytes.Buffer
	if err := b.Write(&buf); err != nil {
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}
	return buf.Bytes(), nil
}
