package repo

//go:generate mockgen -source=base_repo.go -destination=../mocks/mock_repo.go -package=mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
)

const (
	generalQueryTimeout = 60 * time.Second
)

func NewPGRepo(db *gorm.DB) PGInterface {
	return &RepoPG{DB: db}
}

type PGInterface interface {
	// DB
	DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc)
	Ping(ctx context.Context) (err error)

	// revenue
	GetDailyOrderStats(ctx context.Context, date string, tx *gorm.DB) (model.OrderAggregate, error)
	GetMonthlyRevenue(ctx context.Context, month, year int, tx *gorm.DB) (decimal.Decimal, error)
	GetDailyRevenueRows(ctx context.Context, month, year int, tx *gorm.DB) ([]model.DailyRevenueRow, error)

	// order item
	GetDailyCupCount(ctx context.Context, date string, tx *gorm.DB) (int64, error)
	GetDailyCupRows(ctx context.Context, month, year int, tx *gorm.DB) ([]model.DailyCupRow, error)
	GetRevenueByCategory(ctx context.Context, month, year int, tx *gorm.DB) ([]model.CategoryShare, error)

	// work schedule
	GetDailyStaffCost(ctx context.Context, date string, tx *gorm.DB) (decimal.Decimal, error)
	GetMonthlyStaffCost(ctx context.Context, month, year int, tx *gorm.DB) (decimal.Decimal, error)

	// order
	GetAllOrdersForExport(ctx context.Context, tx *gorm.DB) ([]model.OrderListingRow, error)
}

type RepoPG struct {
	DB *gorm.DB
}

func (r *RepoPG) DBWithTimeout(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, generalQueryTimeout)
	return r.DB.WithContext(ctx), cancel
}

// sumRow scans a single COALESCEd SUM.
type sumRow struct {
	Total decimal.Decimal `gorm:"column:total"`
}
