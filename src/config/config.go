package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Auth            AuthConfig           `mapstructure:"auth"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
}

type ServiceConfig struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"logLevel"`
}

type AuthConfig struct {
	JWTSecret        string `mapstructure:"jwtSecret"`
	TokenLifetimeHrs int    `mapstructure:"tokenLifetimeHrs"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	Host         string `mapstructure:"host"`
	Port         string `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     int    `mapstructure:"database"`
	QuoteTTLSecs int    `mapstructure:"quoteTTLSecs"`
}

type ExternalClientConfig struct {
	Eastmoney EastmoneyConfig `mapstructure:"eastmoney"`
}

type EastmoneyConfig struct {
	QuoteBaseURL       string `mapstructure:"quoteBaseUrl"`
	HistoryBaseURL     string `mapstructure:"historyBaseUrl"`
	QuoteTimeoutSecs   int    `mapstructure:"quoteTimeoutSecs"`
	HistoryTimeoutSecs int    `mapstructure:"historyTimeoutSecs"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
