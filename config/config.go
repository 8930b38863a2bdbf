package config

import (
	"strings"

	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type Config struct {
	ServerPort  string         `mapstructure:"server_port"`
	JWTSecret   string         `mapstructure:"jwt_secret"`
	AdminEmail  string         `mapstructure:"admin_email"`
	DeliveryFee float64        `mapstructure:"delivery_fee"`
	Database    DatabaseConfig `mapstructure:"database"`
	SMTP        SMTPConfig     `mapstructure:"smtp"`
}

// Load reads config.yaml from the working directory when present and lets
// QH_* environment variables override every key.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server_port", ":8000")
	v.SetDefault("jwt_secret", "GoQuickHealKey")
	v.SetDefault("admin_email", "orders@quickheal.local")
	v.SetDefault("delivery_fee", 30.0)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "quick_heal")
	v.SetDefault("database.user", "local")
	v.SetDefault("database.password", "local")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "Quick Heal Order System <no-reply@quickheal.local>")

	v.SetEnvPrefix("QH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
