package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	MongoURL  string        `envconfig:"MONGO_URL" required:"true"`
	DBName    string        `envconfig:"DB_NAME" default:"plant_exchange"`
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	HTTPAddr  string        `envconfig:"HTTP_ADDR" default:":8080"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
