package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	BaseModel
	UserID       *int64          `json:"user_id" sql:"index" gorm:"column:user_id"`
	TotalPrice   decimal.Decimal `json:"total_price" gorm:"column:total_price;type:decimal(15,2)"`
	Status       string          `json:"status" sql:"index" gorm:"column:status;not null;"`
	ApprovedBy   *int64          `json:"approved_by" gorm:"column:approved_by"`
	ApprovedAt   *time.Time      `json:"approved_at" gorm:"column:approved_at"`
	RejectReason *string         `json:"reject_reason" gorm:"column:reject_reason"`
	OrderItem    []OrderItem     `json:"order_item" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderListingRow is one line of the raw order export, names already resolved.
type OrderListingRow struct {
	ID           int64           `json:"id" gorm:"column:id"`
	CustomerName *string         `json:"customer_name" gorm:"column:customer_name"`
	TotalPrice   decimal.Decimal `json:"total_price" gorm:"column:total_price"`
	Status       string          `json:"status" gorm:"column:status"`
	StaffName    *string         `json:"staff_name" gorm:"column:staff_name"`
	ApprovedAt   *time.Time      `json:"approved_at" gorm:"column:approved_at"`
	CreatedAt    time.Time       `json:"created_at" gorm:"column:created_at"`
	RejectReason *string         `json:"reject_reason" gorm:"column:reject_reason"`
}

type ExportOrdersRequest struct {
	ExporterName string `json:"exporter_name"`
	ExporterRole string `json:"exporter_role"`
}
