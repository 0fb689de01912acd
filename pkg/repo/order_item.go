package repo

import (
	"context"
	"net/http"

	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"
	"gorm.io/gorm"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

// GetDailyCupCount sums the item quantities of the recognized orders of a day.
func (r *RepoPG) GetDailyCupCount(ctx context.Context, date string, tx *gorm.DB) (int64, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetDailyCupCount")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := struct {
		TotalCups int64 `gorm:"column:total_cups"`
	}{}
	err := tx.Model(&model.OrderItem{}).
		Select("COALESCE(SUM(order_items.quantity), 0) AS total_cups").
		Joins("INNER JOIN orders o ON o.id = order_items.order_id").
		Where("DATE(o.created_at) = ?", date).
		Where("o.status = ANY(?)", utils.RecognizedOrderStatuses).
		Scan(&rs).Error
	if err != nil {
		log.WithError(err).Error("error_500: get daily cup count in GetDailyCupCount - RepoPG")
		return 0, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs.TotalCups, nil
}

func (r *RepoPG) GetDailyCupRows(ctx context.Context, month, year int, tx *gorm.DB) ([]model.DailyCupRow, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetDailyCupRows")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := "SELECT TO_CHAR(DATE(o.created_at), 'YYYY-MM-DD') AS report_date, " +
		" COALESCE(SUM(oi.quantity), 0) AS total_cups " +
		" FROM order_items oi " +
		" INNER JOIN orders o ON o.id = oi.order_id " +
		" WHERE EXTRACT(MONTH FROM o.created_at) = ? " +
		" AND EXTRACT(YEAR FROM o.created_at) = ? " +
		" AND o.status = ANY(?) " +
		" GROUP BY 1 "

	rs := []model.DailyCupRow{}
	if err := tx.Raw(query, month, year, utils.RecognizedOrderStatuses).Scan(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get daily cup rows in GetDailyCupRows - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

// GetRevenueByCategory only returns categories that sold something in the month.
func (r *RepoPG) GetRevenueByCategory(ctx context.Context, month, year int, tx *gorm.DB) ([]model.CategoryShare, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetRevenueByCategory")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	query := "SELECT c.name AS category_name, " +
		" COALESCE(SUM(oi.quantity * oi.price), 0) AS total_amount " +
		" FROM order_items oi " +
		" INNER JOIN orders o ON o.id = oi.order_id " +
		" INNER JOIN products p ON p.id = oi.product_id " +
		" INNER JOIN categories c ON c.id = p.category_id " +
		" WHERE EXTRACT(MONTH FROM o.created_at) = ? " +
		" AND EXTRACT(YEAR FROM o.created_at) = ? " +
		" AND o.status = ANY(?) " +
		" GROUP BY c.name " +
		" ORDER BY total_amount DESC, c.name ASC "

	rs := []model.CategoryShare{}
	if err := tx.Raw(query, month, year, utils.RecognizedOrderStatuses).Scan(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get revenue by category in GetRevenueByCategory - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}
