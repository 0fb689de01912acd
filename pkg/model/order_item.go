package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderItem struct {
	ID        int64           `json:"id" gorm:"column:id;primaryKey"`
	OrderID   int64           `json:"order_id" sql:"index" gorm:"column:order_id;not null;"`
	ProductID int64           `json:"product_id" sql:"index" gorm:"column:product_id;not null;"`
	Quantity  int64           `json:"quantity" gorm:"column:quantity"`
	Price     decimal.Decimal `json:"price" gorm:"column:price;type:decimal(15,2)"`
	Product   *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type Product struct {
	ID         int64     `json:"id" gorm:"column:id;primaryKey"`
	Name       string    `json:"name" gorm:"column:name"`
	CategoryID int64     `json:"category_id" gorm:"column:category_id"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string {
	return "products"
}

type Category struct {
	ID   int64  `json:"id" gorm:"column:id;primaryKey"`
	Name string `json:"name" gorm:"column:name"`
}

func (Category) TableName() string {
	return "categories"
}

// WorkSchedule is one staff shift. Cost of a shift = hours worked * hourly_rate.
type WorkSchedule struct {
	ID         int64           `json:"id" gorm:"column:id;primaryKey"`
	UserID     int64           `json:"user_id" gorm:"column:user_id"`
	WorkDate   datatypes.Date  `json:"work_date" gorm:"column:work_date"`
	StartTime  datatypes.Time  `json:"start_time" gorm:"column:start_time"`
	EndTime    datatypes.Time  `json:"end_time" gorm:"column:end_time"`
	HourlyRate decimal.Decimal `json:"hourly_rate" gorm:"column:hourly_rate;type:decimal(15,2)"`
}

func (WorkSchedule) TableName() string {
	return "work_schedules"
}
