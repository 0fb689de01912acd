package main

import (
	"context"
	"os"

	"github.com/shopspring/decimal"
	"gitlab.com/goxp/cloud0/logger"

	"github.com/banam0503-alt/goc-cafe/conf"
	"github.com/banam0503-alt/goc-cafe/pkg/route"
	"github.com/banam0503-alt/goc-cafe/pkg/utils"
)

const (
	APPNAME = "GocCafeRevenue"
)

func main() {
	conf.SetEnv()
	logger.Init(APPNAME)
	utils.LoadMessageError()

	// money goes out as json numbers, the dashboard charts read them as is
	decimal.MarshalJSONWithoutQuotes = true

	// cloud0 reads its db settings from the environment
	_ = os.Setenv("PORT", conf.LoadEnv().Port)
	_ = os.Setenv("DB_HOST", conf.LoadEnv().DBHost)
	_ = os.Setenv("DB_PORT", conf.LoadEnv().DBPort)
	_ = os.Setenv("DB_USER", conf.LoadEnv().DBUser)
	_ = os.Setenv("DB_PASS", conf.LoadEnv().DBPass)
	_ = os.Setenv("DB_NAME", conf.LoadEnv().DBName)
	_ = os.Setenv("ENABLE_DB", conf.LoadEnv().EnableDB)

	app := route.NewService()
	ctx := context.Background()
	err := app.Start(ctx)
	if err != nil {
		logger.Tag("main").Error(err)
	}
	os.Clearenv()
}
