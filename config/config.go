package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Bank struct {
		Branch               string  `mapstructure:"branch"`
		WithdrawalLimit      float64 `mapstructure:"withdrawal_limit"`
		MaxDailyWithdrawals  int     `mapstructure:"max_daily_withdrawals"`
		MaxDailyTransactions int     `mapstructure:"max_daily_transactions"`
	} `mapstructure:"bank"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("bank.branch", "0001")
	viper.SetDefault("bank.withdrawal_limit", 500.0)
	viper.SetDefault("bank.max_daily_withdrawals", 3)
	viper.SetDefault("bank.max_daily_transactions", 10)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
