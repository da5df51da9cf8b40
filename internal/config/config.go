package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Postgres   Postgres   `yaml:"postgres"`
	Auth       Auth       `yaml:"auth"`
	// LogErrors enables server-side logging of errors that reach the
	// generic 500 responder.
	LogErrors bool `yaml:"log_errors" env:"ENABLE_GLOBAL_ERROR_LOGGING"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:5000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Postgres struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB"`
	// RunMigrations applies the embedded schema migrations at startup.
	// Off by default so that process start never mutates the schema.
	RunMigrations bool `yaml:"run_migrations" env:"RUN_MIGRATIONS"`
}

type Auth struct {
	// BcryptCost is the bcrypt cost factor for new password hashes.
	// Zero means the library default.
	BcryptCost int `yaml:"bcrypt_cost" env-default:"0"`
	// CaseInsensitiveEmail folds case when matching the email address
	// during credential verification.
	CaseInsensitiveEmail bool `yaml:"case_insensitive_email"`
}

func MustLoad() *Config {
	// .env is optional; real environment wins over it either way.
	_ = godotenv.Load()

	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("Can not read config from environment: %s", err)
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Can not read config file %s", err)
	}

	return &cfg
}
