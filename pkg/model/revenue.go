package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardRequest carries the independently selectable dashboard filters.
// Zero values mean "today".
type DashboardRequest struct {
	Date  string `json:"date" form:"date"`
	Month int    `json:"month" form:"month"`
	Year  int    `json:"year" form:"year"`
}

type DailyStatRequest struct {
	Date string `json:"date" form:"date"`
}

type MonthlyStatRequest struct {
	Month int `json:"month" form:"month"`
	Year  int `json:"year" form:"year"`
}

type ExportRevenueRequest struct {
	Month        int    `json:"month" form:"month" valid:"Required"`
	Year         int    `json:"year" form:"year" valid:"Required"`
	ExporterName string `json:"exporter_name" form:"-"`
}

// OrderAggregate is the raw count/sum row of recognized orders in a period.
type OrderAggregate struct {
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type DailyStat struct {
	Date       string          `json:"date"`
	OrderCount int64           `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	CupCount   int64           `json:"cup_count"`
}

type MonthlyStat struct {
	Month     int             `json:"month"`
	Year      int             `json:"year"`
	Revenue   decimal.Decimal `json:"revenue"`
	StaffCost decimal.Decimal `json:"staff_cost"`
	Profit    decimal.Decimal `json:"profit"`
}

type CategoryShare struct {
	CategoryName string          `json:"category_name" gorm:"column:category_name"`
	TotalAmount  decimal.Decimal `json:"total_amount" gorm:"column:total_amount"`
	Percent      decimal.Decimal `json:"percent" gorm:"-"`
}

// DailyRevenueRow and DailyCupRow are the two per-day aggregates of a month,
// keyed by report_date formatted as YYYY-MM-DD.
type DailyRevenueRow struct {
	ReportDate   string          `json:"report_date" gorm:"column:report_date"`
	TotalOrders  int64           `json:"total_orders" gorm:"column:total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue" gorm:"column:total_revenue"`
}

type DailyCupRow struct {
	ReportDate string `json:"report_date" gorm:"column:report_date"`
	TotalCups  int64  `json:"total_cups" gorm:"column:total_cups"`
}

// DailyBreakdown is one row of the monthly revenue report.
type DailyBreakdown struct {
	Date       time.Time       `json:"date"`
	OrderCount int64           `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
	CupCount   int64           `json:"cup_count"`
}

type DailyOverview struct {
	DailyStat
	StaffCost decimal.Decimal `json:"staff_cost"`
	Profit    decimal.Decimal `json:"profit"`
}

type CategoryChart struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

type DashboardResponse struct {
	Daily      DailyOverview   `json:"daily"`
	Monthly    MonthlyStat     `json:"monthly"`
	Categories []CategoryShare `json:"categories"`
	Chart      CategoryChart   `json:"chart"`
}
