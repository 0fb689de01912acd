package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/banam0503-alt/goc-cafe/pkg/model"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

var (
	revenueMonth int
	revenueYear  int
	preparerName string
)

var revenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Monthly revenue report (Bao_Cao_Doanh_Thu_T<m>_<yyyy>.xlsx)",
	RunE:  runRevenue,
}

func init() {
	rootCmd.AddCommand(revenueCmd)

	revenueCmd.Flags().IntVar(&revenueMonth, "month", 0, "Report month 1-12, defaults to the current month")
	revenueCmd.Flags().IntVar(&revenueYear, "year", 0, "Report year, defaults to the current year")
	revenueCmd.Flags().StringVar(&preparerName, "name", utils.DEFAULT_EXPORTER_NAME, "Name printed under the signature line")
}

func runRevenue(cmd *cobra.Command, args []string) error {
	month, year := currentPeriod()
	if revenueMonth != 0 {
		month = revenueMonth
	}
	if revenueYear != 0 {
		year = revenueYear
	}
	if err := utils.ValidatePeriod(month, year); err != nil {
		return err
	}

	svc, err := exportService()
	if err != nil {
		return err
	}

	filename, data, err := svc.ExportRevenue(context.Background(), model.ExportRevenueRequest{
		Month:        month,
		Year:         year,
		ExporterName: preparerName,
	})
	if err != nil {
		return err
	}

	return writeWorkbook(filename, data)
}
