package repo

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

func (r *RepoPG) GetDailyOrderStats(ctx context.Context, date string, tx *gorm.DB) (model.OrderAggregate, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetDailyOrderStats")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := "SELECT COUNT(*) AS total_orders, COALESCE(SUM(total_price), 0) AS total_revenue " +
		" FROM orders " +
		" WHERE DATE(created_at) = ? " +
		" AND status = ANY(?) "

	rs := model.OrderAggregate{}
	if err := tx.Raw(query, date, utils.RecognizedOrderStatuses).Scan(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get daily order stats in GetDailyOrderStats - RepoPG")
		return model.OrderAggregate{}, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

func (r *RepoPG) GetMonthlyRevenue(ctx context.Context, month, year int, tx *gorm.DB) (decimal.Decimal, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetMonthlyRevenue")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := "SELECT COALESCE(SUM(total_price), 0) AS total " +
		" FROM orders " +
		" WHERE EXTRACT(MONTH FROM created_at) = ? " +
		" AND EXTRACT(YEAR FROM created_at) = ? " +
		" AND status = ANY(?) "

	rs := sumRow{}
	if err := tx.Raw(query, month, year, utils.RecognizedOrderStatuses).Scan(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get monthly revenue in GetMonthlyRevenue - RepoPG")
		return decimal.Zero, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs.Total, nil
}

// GetDailyRevenueRows returns one row per day of the month that has at least
// one recognized order, ordered by day.
func (r *RepoPG) GetDailyRevenueRows(ctx context.Context, month, year int, tx *gorm.DB) ([]model.DailyRevenueRow, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetDailyRevenueRows")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := "SELECT TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS report_date, " +
		" COUNT(*) AS total_orders, " +
		" COALESCE(SUM(total_price), 0) AS total_revenue " +
		" FROM orders " +
		" WHERE EXTRACT(MONTH FROM created_at) = ? " +
		" AND EXTRACT(YEAR FROM created_at) = ? " +
		" AND status = ANY(?) " +
		" GROUP BY 1 " +
		" ORDER BY 1 "

	rs := []model.DailyRevenueRow{}
	if err := tx.Raw(query, month, year, utils.RecognizedOrderStatuses).Scan(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get daily revenue rows in GetDailyRevenueRows - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}
