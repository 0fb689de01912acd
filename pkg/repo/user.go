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

// shiftCost is the cost of one work_schedules row in money.
const shiftCost = "COALESCE(SUM(EXTRACT(EPOCH FROM (end_time - start_time)) / 3600 * hourly_rate), 0) AS total"

func (r *RepoPG) Ping(ctx context.Context) (err error) {
	log := logger.WithCtx(ctx, "RepoPG.Ping")

	tx, cancel := r.DBWithTimeout(ctx)
	defer cancel()

	if err = tx.Exec("SELECT 1").Error; err != nil {
		log.WithError(err).Error("error_500: ping database in Ping - RepoPG")
		return ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return nil
}

func (r *RepoPG) GetDailyStaffCost(ctx context.Context, date string, tx *gorm.DB) (decimal.Decimal, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetDailyStaffCost")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := sumRow{}
	if err := tx.Model(&model.WorkSchedule{}).Select(shiftCost).Where("work_date = ?", date).Scan(&rs).Error; err != nil {
		log.WithError(err).Error("error_500: get daily staff cost in GetDailyStaffCost - RepoPG")
		return decimal.Zero, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs.Total, nil
}

func (r *RepoPG) GetMonthlyStaffCost(ctx context.Context, month, year int, tx *gorm.DB) (decimal.Decimal, error) {
	log := logger.WithCtx(ctx, "RepoPG.GetMonthlyStaffCost")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	rs := sumRow{}
	err := tx.Model(&model.WorkSchedule{}).Select(shiftCost).
		Where("EXTRACT(MONTH FROM work_date) = ? AND EXTRACT(YEAR FROM work_date) = ?", month, year).
		Scan(&rs).Error
	if err != nil {
		log.WithError(err).Error("error_500: get monthly staff cost in GetMonthlyStaffCost - RepoPG")
		return decimal.Zero, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs.Total, nil
}
