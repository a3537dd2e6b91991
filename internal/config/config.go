package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/ordersapi/orders-svc/pkg/logger"
	"github.com/spf13/viper"
)

// MustInit loads the environment and configuration files and installs the
// default logger.
func MustInit() {
	if err := godotenv.Load("./.env"); err != nil {
		panic("error while loading .env file: " + err.Error())
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/orders-svc")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		panic("error while reading config file: " + err.Error())
	}
	SetupLogger()
}

// SetupLogger installs the service's slog handler as the default logger.
func SetupLogger() {
	handler := logger.NewHandler(nil)
	log := slog.New(handler)
	slog.SetDefault(log)
}
