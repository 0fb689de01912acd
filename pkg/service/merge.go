package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

// CupsByDate indexes the per-day cup sums by their YYYY-MM-DD key.
func CupsByDate(rows []model.DailyCupRow) map[string]int64 {
	rs := make(map[string]int64, len(rows))
	for _, r := range rows {
		rs[r.ReportDate] += r.TotalCups
	}
	return rs
}

// MergeDailyBreakdown left joins cup counts onto the revenue days. A day with
// cups but no recognized revenue row is dropped, a revenue day without cups
// gets 0. Output is sorted by date ascending.
func MergeDailyBreakdown(revenues []model.DailyRevenueRow, cups map[string]int64) ([]model.DailyBreakdown, error) {
	byDate := make(map[string]*model.DailyBreakdown, len(revenues))
	for _, r := range revenues {
		if d, ok := byDate[r.ReportDate]; ok {
			d.OrderCount += r.TotalOrders
			d.Revenue = d.Revenue.Add(r.TotalRevenue)
			continue
		}

		date, err := time.Parse(utils.DATE_FORMAT, r.ReportDate)
		if err != nil {
			return nil, fmt.Errorf("parse report date %q: %w", r.ReportDate, err)
		}
		byDate[r.ReportDate] = &model.DailyBreakdown{
			Date:       date,
			OrderCount: r.TotalOrders,
			Revenue:    r.TotalRevenue,
			CupCount:   cups[r.ReportDate],
		}
	}

	rs := make([]model.DailyBreakdown, 0, len(byDate))
	for _, d := range byDate {
		rs = append(rs, *d)
	}
	sort.Slice(rs, func(i, j int) bool {
		return rs[i].Date.Before(rs[j].Date)
	})

	return rs, nil
}
