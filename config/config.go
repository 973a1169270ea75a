package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config параметры приложения. Значения читает viper из файла app.env
// либо из переменных окружения.
type Config struct {
	AppName  string `mapstructure:"APP_NAME"`
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	LogLevel string `mapstructure:"LOG_LEVEL"` // "debug", "info", "warn", "error"

	// Каталог с JSON-файлами коллекций
	DataDir string `mapstructure:"DATA_DIR"`

	// Имитация платёжного шлюза
	PaymentDelay       time.Duration `mapstructure:"PAYMENT_DELAY"`
	PaymentSuccessRate float64       `mapstructure:"PAYMENT_SUCCESS_RATE"`
}

// LoadConfig читает конфигурацию из файла или переменных окружения
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "darkher")
	viper.SetDefault("HTTP_ADDR", ":9091")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("PAYMENT_DELAY", 1500*time.Millisecond)
	viper.SetDefault("PAYMENT_SUCCESS_RATE", 0.8)

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("Config file not found, using environment variables and defaults")
			err = nil
		} else {
			return
		}
	}

	err = viper.Unmarshal(&config)
	return
}
