package config

import (
	"github.com/caarlos0/env/v11"
	xenv "github.com/nvalerio/wearsync/internal/env"
)

type Config struct {
	Port        string           `env:"PORT" envDefault:"8080"`
	Environment xenv.Environment `env:"ENVIRONMENT" envDefault:"development"`
	DatabaseURL string           `env:"DATABASE_URL,required"`
	RedisURL    string           `env:"REDIS_URL"`
	FrontendURL string           `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	Fitbit Fitbit `envPrefix:"FITBIT_"`
	Whoop  Whoop  `envPrefix:"WHOOP_"`
}

type Fitbit struct {
	ClientID     string `env:"CLIENT_ID,required"`
	ClientSecret string `env:"CLIENT_SECRET,required"`
	RedirectURL  string `env:"REDIRECT_URL,required"`
}

type Whoop struct {
	ClientID     string `env:"CLIENT_ID,required"`
	ClientSecret string `env:"CLIENT_SECRET,required"`
	RedirectURL  string `env:"REDIRECT_URL,required"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
