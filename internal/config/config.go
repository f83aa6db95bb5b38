package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const KeyLogger = key("logger")

type Config struct {
	Service    Service
	Postgres   Postgres
	Admin      Admin
	Logger     Logger
	Platform   Platform
	Redis      Redis
	Centrifuge Centrifuge
	Live       Live
}

type Service struct {
	Name string `env:"SERVICE_NAME" env-default:"board-service"`
	Port string `env:"SERVICE_PORT" env-default:"8080"`
}

type Postgres struct {
	User            string        `env:"POSTGRES_USER" env-required:"true"`
	Password        string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database        string        `env:"POSTGRES_DB" env-required:"true"`
	Host            string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port            string        `env:"POSTGRES_PORT" env-default:"5432"`
	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" env-default:"5m"`
}

type Admin struct {
	Key    string `env:"ADMIN_KEY" env-required:"true"`
	Header string `env:"ADMIN_HEADER" env-default:"X-Admin-Key"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Platform struct {
	Env string `env:"ENV" env-default:"dev"`
}

// Redis.URL left empty keeps broadcasting local to this instance.
type Redis struct {
	URL     string `env:"REDIS_URL"`
	Channel string `env:"REDIS_CHANNEL" env-default:"board:events"`
}

type Centrifuge struct {
	Enabled   bool          `env:"CENTRIFUGO_ENABLED" env-default:"false"`
	BaseURL   string        `env:"CENTRIFUGO_BASE_URL" env-default:"http://localhost:8000"`
	APIKey    string        `env:"CENTRIFUGO_API_KEY"`
	JWTSecret string        `env:"CENTRIFUGO_JWT_SECRET"`
	Timeout   time.Duration `env:"CENTRIFUGO_TIMEOUT" env-default:"5s"`
}

type Live struct {
	RecentWindow time.Duration `env:"LIVE_RECENT_WINDOW" env-default:"48h"`
	SendBuffer   int           `env:"LIVE_SEND_BUFFER" env-default:"256"`
}

func MustLoad() *Config {
	cfg := &Config{}

	var err error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	return cfg
}
