package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultRunAddress = "localhost:8080"
	defaultDriver     = DriverPostgres
	defaultSecret     = "SecRetKey"
	defaultTokenTTL   = 24
)

type Config struct {
	Env    string
	DB     db
	Redis  redis
	Server server
	Auth   auth
	Logger logger
}

type db struct {
	Driver      string `env:"DATABASE_DRIVER"`
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type redis struct {
	Address string `env:"REDIS_ADDRESS"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type auth struct {
	Secret        string `env:"SECRET"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad читает конфигурацию сервера из .env и переменных окружения.
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("database_driver", defaultDriver)
	viper.SetDefault("token_ttl_hours", defaultTokenTTL)

	secret := viper.GetString("secret")
	if secret == "" {
		secret = defaultSecret
	}

	config := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			Driver:      viper.GetString("database_driver"),
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Redis:  redis{Address: viper.GetString("redis_address")},
		Server: server{RunAddress: viper.GetString("run_address")},
		Auth: auth{
			Secret:        secret,
			TokenTTLHours: viper.GetInt("token_ttl_hours"),
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	return &config
}
