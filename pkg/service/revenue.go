package service

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/logger"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/repo"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

type RevenueService struct {
	repo repo.PGInterface
	loc  *time.Location
	now  func() time.Time
}

func NewRevenueService(repo repo.PGInterface, loc *time.Location) RevenueServiceInterface {
	return &RevenueService{repo: repo, loc: loc, now: time.Now}
}

type RevenueServiceInterface interface {
	DailyStats(ctx context.Context, date string) (model.DailyStat, error)
	DailyStaffCost(ctx context.Context, date string) (decimal.Decimal, error)
	MonthlyStats(ctx context.Context, month, year int) (model.MonthlyStat, error)
	RevenueByCategory(ctx context.Context, month, year int) ([]model.CategoryShare, error)
	DailyBreakdown(ctx context.Context, month, year int) ([]model.DailyBreakdown, error)
	Dashboard(ctx context.Context, req model.DashboardRequest) (model.DashboardResponse, error)
}

func (s *RevenueService) DailyStats(ctx context.Context, date string) (model.DailyStat, error) {
	log := logger.WithCtx(ctx, "RevenueService.DailyStats").WithField("date", date)

	orders, err := s.repo.GetDailyOrderStats(ctx, date, nil)
	if err != nil {
		log.WithError(err).Error("Get daily order stats error")
		return model.DailyStat{}, err
	}

	cups, err := s.repo.GetDailyCupCount(ctx, date, nil)
	if err != nil {
		log.WithError(err).Error("Get daily cup count error")
		return model.DailyStat{}, err
	}

	return model.DailyStat{
		Date:       date,
		OrderCount: orders.TotalOrders,
		Revenue:    orders.TotalRevenue,
		CupCount:   cups,
	}, nil
}

func (s *RevenueService) DailyStaffCost(ctx context.Context, date string) (decimal.Decimal, error) {
	log := logger.WithCtx(ctx, "RevenueService.DailyStaffCost").WithField("date", date)

	cost, err := s.repo.GetDailyStaffCost(ctx, date, nil)
	if err != nil {
		log.WithError(err).Error("Get daily staff cost error")
		return decimal.Zero, err
	}

	return cost, nil
}

func (s *RevenueService) MonthlyStats(ctx context.Context, month, year int) (model.MonthlyStat, error) {
	log := logger.WithCtx(ctx, "RevenueService.MonthlyStats").WithField("month", month).WithField("year", year)

	revenue, err := s.repo.GetMonthlyRevenue(ctx, month, year, nil)
	if err != nil {
		log.WithError(err).Error("Get monthly revenue error")
		return model.MonthlyStat{}, err
	}

	staffCost, err := s.repo.GetMonthlyStaffCost(ctx, month, year, nil)
	if err != nil {
		log.WithError(err).Error("Get monthly staff cost error")
		return model.MonthlyStat{}, err
	}

	return model.MonthlyStat{
		Month:     month,
		Year:      year,
		Revenue:   revenue,
		StaffCost: staffCost,
		Profit:    revenue.Sub(staffCost),
	}, nil
}

// RevenueByCategory only lists categories that sold something in the month,
// biggest first, with their share of the month total in percent.
func (s *RevenueService) RevenueByCategory(ctx context.Context, month, year int) ([]model.CategoryShare, error) {
	log := logger.WithCtx(ctx, "RevenueService.RevenueByCategory").WithField("month", month).WithField("year", year)

	shares, err := s.repo.GetRevenueByCategory(ctx, month, year, nil)
	if err != nil {
		log.WithError(err).Error("Get revenue by category error")
		return nil, err
	}

	return withPercent(shares), nil
}

func withPercent(shares []model.CategoryShare) []model.CategoryShare {
	rs := make([]model.CategoryShare, len(shares))
	copy(rs, shares)

	sort.SliceStable(rs, func(i, j int) bool {
		if c := rs[i].TotalAmount.Cmp(rs[j].TotalAmount); c != 0 {
			return c > 0
		}
		return rs[i].CategoryName < rs[j].CategoryName
	})

	total := decimal.Zero
	for _, c := range rs {
		total = total.Add(c.TotalAmount)
	}
	for i := range rs {
		if total.IsZero() {
			rs[i].Percent = decimal.Zero
			continue
		}
		rs[i].Percent = rs[i].TotalAmount.Mul(hundred).Div(total).Round(2)
	}
	return rs
}

func (s *RevenueService) DailyBreakdown(ctx context.Context, month, year int) ([]model.DailyBreakdown, error) {
	log := logger.WithCtx(ctx, "RevenueService.DailyBreakdown").WithField("month", month).WithField("year", year)

	revenues, err := s.repo.GetDailyRevenueRows(ctx, month, year, nil)
	if err != nil {
		log.WithError(err).Error("Get daily revenue rows error")
		return nil, err
	}

	cupRows, err := s.repo.GetDailyCupRows(ctx, month, year, nil)
	if err != nil {
		log.WithError(err).Error("Get daily cup rows error")
		return nil, err
	}

	rs, err := MergeDailyBreakdown(revenues, CupsByDate(cupRows))
	if err != nil {
		log.WithError(err).Error("Merge daily breakdown error")
		return nil, ginext.NewError(http.StatusInternalServerError, utils.MessageError()[http.StatusInternalServerError])
	}

	return rs, nil
}

// Dashboard bundles everything the overview page shows. Date and month are
// chosen independently and default to today.
func (s *RevenueService) Dashboard(ctx context.Context, req model.DashboardRequest) (model.DashboardResponse, error) {
	log := logger.WithCtx(ctx, "RevenueService.Dashboard").WithField("req", req)

	now := s.now().In(s.loc)
	date, err := utils.ResolveDate(req.Date, now)
	if err != nil {
		log.WithError(err).Warn("invalid dashboard date")
		return model.DashboardResponse{}, ginext.NewError(http.StatusBadRequest, err.Error())
	}
	month, year, err := utils.ResolveMonth(req.Month, req.Year, now)
	if err != nil {
		log.WithError(err).Warn("invalid dashboard period")
		return model.DashboardResponse{}, ginext.NewError(http.StatusBadRequest, err.Error())
	}

	daily, err := s.DailyStats(ctx, date)
	if err != nil {
		return model.DashboardResponse{}, err
	}
	staffCost, err := s.DailyStaffCost(ctx, date)
	if err != nil {
		return model.DashboardResponse{}, err
	}
	monthly, err := s.MonthlyStats(ctx, month, year)
	if err != nil {
		return model.DashboardResponse{}, err
	}
	categories, err := s.RevenueByCategory(ctx, month, year)
	if err != nil {
		return model.DashboardResponse{}, err
	}

	chart := model.CategoryChart{
		Labels: make([]string, 0, len(categories)),
		Values: make([]decimal.Decimal, 0, len(categories)),
	}
	for _, c := range categories {
		chart.Labels = append(chart.Labels, c.CategoryName)
		chart.Values = append(chart.Values, c.TotalAmount)
	}

	return model.DashboardResponse{
		Daily: model.DailyOverview{
			DailyStat: daily,
			StaffCost: staffCost,
			Profit:    daily.Revenue.Sub(staffCost),
		},
		Monthly:    monthly,
		Categories: categories,
		Chart:      chart,
	}, nil
}
