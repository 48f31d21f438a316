package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
	databaseDSN       = "DATABASE_DSN"
	backendURLENV     = "BACKEND_URL"
)

// Config ...
type Config struct {
	Telegram struct {
		Token string `yaml:"token"`
	} `yaml:"telegram"`
	DB string `yaml:"db_dsn"`

	// Бэкенд бэктестера: три эндпоинта, /exchanges /symbols /trade.
	Backend struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"backend"`

	Service struct {
		Host      string `yaml:"host"`
		AdminPort int    `yaml:"admin_port"`
	} `yaml:"service"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`

	// Дефолты параметров бэктеста (создаём юзеру при первом /start).
	DefaultUsername      string  `yaml:"default_username"`
	DefaultRSIPeriod     int     `yaml:"rsi_period"`
	DefaultBuyThreshold  float64 `yaml:"buy_threshold"`
	DefaultSellThreshold float64 `yaml:"sell_threshold"`
	DefaultMAPeriod      int     `yaml:"ma_period"`
	DefaultTradeType     string  `yaml:"trade_type"`
	DefaultStrategy      string  `yaml:"strategy"`
}

func NewConfig() (*Config, error) {

	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		log.Fatalf("Failed to open config file: %v", err)
	}

	defer func() {
		_ = file.Close()
	}()

	decoder := yaml.NewDecoder(file)
	config := Config{
		DefaultUsername:      getenvDefault("BACKTEST_USERNAME", "default_user"),
		DefaultRSIPeriod:     intFromEnv("RSI_PERIOD", 14),
		DefaultBuyThreshold:  floatFromEnv("BUY_THRESHOLD", 30),
		DefaultSellThreshold: floatFromEnv("SELL_THRESHOLD", 70),
		DefaultMAPeriod:      intFromEnv("MA_PERIOD", 20),
		DefaultTradeType:     getenvDefault("TRADE_TYPE", "long"),
		DefaultStrategy:      getenvDefault("STRATEGY", "RSI"),
	}
	err = decoder.Decode(&config)
	if err != nil {
		log.Fatalf("Failed to decode config file: %v", err)
	}

	token := os.Getenv(tokenTelegramENV)
	if token != "" {
		config.Telegram.Token = token
	}

	dsn := os.Getenv(databaseDSN)
	if dsn != "" {
		config.DB = dsn
	}

	backendURL := os.Getenv(backendURLENV)
	if backendURL != "" {
		config.Backend.BaseURL = backendURL
	}
	if config.Backend.BaseURL == "" {
		config.Backend.BaseURL = "http://127.0.0.1:8080"
	}

	return &config, nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatFromEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
