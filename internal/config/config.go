package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port           string        `mapstructure:"port" validate:"required,numeric"`
	MongoURI       string        `mapstructure:"mongo_uri" validate:"required"`
	MongoDB        string        `mapstructure:"mongo_db" validate:"required"`
	DBUser         string        `mapstructure:"db_user"`
	DBPass         string        `mapstructure:"db_pass"`
	DBHost         string        `mapstructure:"db_host"`
	DBTimeout      time.Duration `mapstructure:"db_timeout" validate:"gt=0"`
	JWTSecret      string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	JWTTTL         time.Duration `mapstructure:"jwt_ttl" validate:"gt=0"`
	AllowedOrigins []string      `mapstructure:"allowed_origins" validate:"required,dive,url"`
	LogLevel       string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl" validate:"gte=0"`
	GinMode        string        `mapstructure:"gin_mode" validate:"oneof=debug release test"`
}

var defaults = map[string]interface{}{
	"port":            "5000",
	"mongo_uri":       "",
	"mongo_db":        "SumonMoto",
	"db_user":         "",
	"db_pass":         "",
	"db_host":         "",
	"db_timeout":      "5s",
	"jwt_secret":      "",
	"jwt_ttl":         "1h",
	"allowed_origins": "http://localhost:5173",
	"log_level":       "info",
	"cache_ttl":       "2m",
	"gin_mode":        "release",
}

// LoadConfig lee .env si existe y luego las variables de entorno, que
// tienen prioridad.
func LoadConfig() (*Config, error) {
	// Solo cargar .env en desarrollo local
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Warn("⚠️ error loading .env file", "error", err)
		} else {
			slog.Info("✅ .env file loaded successfully")
		}
	} else {
		slog.Info("🌐 using system environment variables")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = buildMongoURI(cfg.DBUser, cfg.DBPass, cfg.DBHost)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// buildMongoURI arma la URI de Atlas a partir de credenciales sueltas
func buildMongoURI(user, pass, host string) string {
	if user == "" || pass == "" || host == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// Addr devuelve la dirección de escucha
func (c *Config) Addr() string {
	return ":" + c.Port
}
