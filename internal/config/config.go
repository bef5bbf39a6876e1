package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port               int      `mapstructure:"port"`
	LogLevel           string   `mapstructure:"log_level"`
	DatabaseURL        string   `mapstructure:"database_url"`
	JWTSecret          string   `mapstructure:"jwt_secret"`
	TokenExpireMinutes int      `mapstructure:"token_expire_minutes"`
	AllowedOrigins     []string `mapstructure:"allowed_origins"`
}

var AppConfig Config

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func InitConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("GAMESHELF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("port", 8080)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("token_expire_minutes", 30)
	viper.SetDefault("allowed_origins", defaultOrigins)
	// Registering the keys lets AutomaticEnv feed them through Unmarshal.
	viper.SetDefault("jwt_secret", "")
	viper.SetDefault("database_url", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading config file: %w", err)
		}
		// No config file is fine, env vars and defaults apply.
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	if AppConfig.JWTSecret == "" {
		return fmt.Errorf("jwt_secret is not set")
	}

	if AppConfig.DatabaseURL == "" {
		return fmt.Errorf("database_url is not set")
	}

	return nil
}

// AllowedOrigins returns the configured CORS origins, falling back to the
// development defaults when the config was never loaded.
func AllowedOrigins() []string {
	if len(AppConfig.AllowedOrigins) > 0 {
		return AppConfig.AllowedOrigins
	}

	return defaultOrigins
}
