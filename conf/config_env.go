package conf

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// AppConfig presents app conf
type AppConfig struct {
	Port          string `env:"PORT" envDefault:"8081"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`
	DBHost        string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER" envDefault:"goccafe"`
	DBPass        string `env:"DB_PASS" envDefault:"goccafe"`
	DBName        string `env:"DB_NAME" envDefault:"goccafe"`
	DBSSLMode     string `env:"DB_SSL_MODE" envDefault:"disable"`
	EnableDB      string `env:"ENABLE_DB" envDefault:"true"`
	DbDebugEnable bool   `env:"DB_DEBUG_ENABLE" envDefault:"false"`

	Timezone    string   `env:"TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
	CorsOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// report branding
	OrgName    string `env:"ORG_NAME" envDefault:"GÓC CAFE"`
	OrgTagline string `env:"ORG_TAGLINE" envDefault:"Góc Cà Phê - Hệ thống quản lý"`
	ReportCity string `env:"REPORT_CITY" envDefault:"Hải Phòng"`
	LogoPath   string `env:"LOGO_PATH" envDefault:"public/assets/img/logo1.jpg"`
}

var config AppConfig

func SetEnv() {
	_ = env.Parse(&config)
}

func LoadEnv() AppConfig {
	return config
}

// DSN builds the postgres connection string used outside of the cloud0 app (cli).
func (c AppConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName, c.DBSSLMode, c.Timezone)
}
