package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	JWT struct {
		Secret string
	}
	Game struct {
		StartingBalance int64  // 新钱包初始余额（最小货币单位）
		Storage         string // redis / postgres / memory
	}
}

var C Config

func Load() {
	viper.SetConfigFile("config/config.yaml")
	viper.SetDefault("game.startingbalance", 10000)
	viper.SetDefault("game.storage", "redis")
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read config: %v", err)
	}
	if err := viper.Unmarshal(&C); err != nil {
		log.Fatalf("Failed to parse config: %v", err)
	}
}
