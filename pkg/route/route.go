package route

import (
	"github.com/gin-contrib/cors"
	"gitlab.com/goxp/cloud0/ginext"
	"gitlab.com/goxp/cloud0/service"

	"github.com/banam0503-alt/goc-cafe/conf"
	"github.com/banam0503-alt/goc-cafe/pkg/handlers"
	"github.com/banam0503-alt/goc-cafe/pkg/report"
	"github.com/banam0503-alt/goc-cafe/pkg/repo"
	service2 "github.com/banam0503-alt/goc-cafe/pkg/service"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

type Service struct {
	*service.BaseApp
}

func NewService() *Service {
	s := &Service{
		service.NewApp("Goc Cafe Revenue", "v1.0"),
	}
	cfg := conf.LoadEnv()

	// repo
	db := s.GetDB()
	if cfg.DbDebugEnable {
		db = db.Debug()
	}
	repoPG := repo.NewPGRepo(db)

	s.Router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CorsOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", utils.HEADER_USER_ID, utils.HEADER_USER_NAME, utils.HEADER_USER_ROLES},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	loc := utils.LoadLocation(cfg.Timezone)
	meta := report.Meta{
		OrgName:  cfg.OrgName,
		Tagline:  cfg.OrgTagline,
		City:     cfg.ReportCity,
		LogoPath: cfg.LogoPath,
	}

	revenueService := service2.NewRevenueService(repoPG, loc)
	orderService := service2.NewOrderService(repoPG)
	exportService := service2.NewExportService(revenueService, orderService, meta, loc)
	healthService := service2.NewHealthService(repoPG)

	revenueHandle := handlers.NewRevenueHandlers(revenueService, exportService, loc)
	orderHandle := handlers.NewOrderHandlers(exportService)
	healthHandle := handlers.NewHealthHandlers(healthService)

	v1Api := s.Router.Group("/api/v1")

	v1Api.GET("/health", ginext.WrapHandler(healthHandle.Ping))

	// revenue
	v1Api.GET("/revenue/dashboard", ginext.WrapHandler(revenueHandle.Dashboard))
	v1Api.GET("/revenue/daily", ginext.WrapHandler(revenueHandle.Daily))
	v1Api.GET("/revenue/monthly", ginext.WrapHandler(revenueHandle.Monthly))
	v1Api.GET("/revenue/categories", ginext.WrapHandler(revenueHandle.Categories))
	v1Api.GET("/revenue/breakdown", ginext.WrapHandler(revenueHandle.Breakdown))
	v1Api.GET("/revenue/export", revenueHandle.ExportRevenue)

	// order
	v1Api.GET("/orders/export", orderHandle.ExportOrders)

	return s
}
