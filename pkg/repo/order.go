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

// GetAllOrdersForExport lists every order regardless of status, newest first,
// with the customer and approver names resolved.
func (r *RepoPG) GetAllOrdersForExport(ctx context.Context, tx *gorm.DB) (orders []model.OrderListingRow, err error) {
	log := logger.WithCtx(ctx, "RepoPG.GetAllOrdersForExport")

	var cancel context.CancelFunc
	if tx == nil {
		tx, cancel = r.DBWithTimeout(ctx)
		defer cancel()
	}

	users := model.User{}.TableName()

	orders = []model.OrderListingRow{}
	err = tx.Model(&model.Order{}).
		Select("orders.id, customer.name AS customer_name, orders.total_price, orders.status, " +
			"staff.name AS staff_name, orders.approved_at, orders.created_at, orders.reject_reason").
		Joins("LEFT JOIN " + users + " customer ON customer.id = orders.user_id").
		Joins("LEFT JOIN " + users + " staff ON staff.id = orders.approved_by").
		Order("orders.created_at DESC").
		Scan(&orders).Error
	if err != nil {
		log.WithError(err).Error("error_500: get orders in GetAllOrdersForExport - RepoPG")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return orders, nil
}
