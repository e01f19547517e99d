package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	MongoURI string
	MongoDB  string

	JWTSecret     string
	SessionTTL    string
	AdminPassword string

	Log      string
	LogLevel string
	Env      string // dev|prod
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	cfg := &Config{
		Port: def(os.Getenv("PORT"), "8080"),

		MongoURI: def(os.Getenv("MONGODB_URI"), "mongodb://localhost:27017"),
		MongoDB:  def(os.Getenv("MONGODB_DB"), "wisdomcircle"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionTTL:    def(os.Getenv("SESSION_TTL"), "168h"),
		AdminPassword: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD")),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.MongoURI == "" || c.MongoDB == "" {
		return nil, fmt.Errorf("incomplete Mongo config (MONGODB_URI/MONGODB_DB)")
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty")
	}

	// Без пароля из окружения вход возможен только через пользователя в БД
	if c.AdminPassword == "" {
		warnings = append(warnings, "ADMIN_PASSWORD is not set")
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetMongoURISafe — URI без пароля (для логов)
func (c *Config) GetMongoURISafe() string {
	u, err := url.Parse(c.MongoURI)
	if err != nil {
		return "mongodb://***"
	}
	if u.User != nil {
		u.User = url.User(u.User.Username())
	}
	return u.String()
}
