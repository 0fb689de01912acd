package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/banam0503-alt/goc-cafe/conf"
	"github.com/banam0503-alt/goc-cafe/pkg/report"
	"github.com/banam0503-alt/goc-cafe/pkg/repo"
	"github.com/banam0503-alt/goc-cafe/pkg/service"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

var outDir string

var rootCmd = &cobra.Command{
	Use:   "cafe-report",
	Short: "Render Góc Cà Phê spreadsheets without the http server",
	Long: `cafe-report builds the same xlsx workbooks as the /export endpoints,
reading straight from the order database. Useful for scheduled month-end runs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		conf.SetEnv()
		utils.LoadMessageError()
		if conf.LoadEnv().LogFormat == "json" {
			logrus.SetFormatter(&logrus.JSONFormatter{})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&outDir, "out", ".", "Directory the workbook is written to")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// exportService wires the same service graph as the http server on a plain gorm connection.
func exportService() (service.ExportServiceInterface, error) {
	cfg := conf.LoadEnv()

	gormCfg := &gorm.Config{}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.DbDebugEnable {
		db = db.Debug()
	}

	repoPG := repo.NewPGRepo(db)
	loc := utils.LoadLocation(cfg.Timezone)
	meta := report.Meta{
		OrgName:  cfg.OrgName,
		Tagline:  cfg.OrgTagline,
		City:     cfg.ReportCity,
		LogoPath: cfg.LogoPath,
	}
	revenueService := service.NewRevenueService(repoPG, loc)
	return service.NewExportService(revenueService, service.NewOrderService(repoPG), meta, loc), nil
}

func writeWorkbook(filename string, data []byte) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logrus.WithField("path", path).WithField("bytes", len(data)).Info("workbook written")
	return nil
}

func currentPeriod() (int, int) {
	now := time.Now().In(utils.LoadLocation(conf.LoadEnv().Timezone))
	return int(now.Month()), now.Year()
}
