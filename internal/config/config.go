package config

import (
	"strings"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"UTC"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Calendar struct {
		URL      string `env:"CALENDAR_URL"`
		Username string `env:"CALENDAR_USERNAME"`
		Password string `env:"CALENDAR_PASSWORD"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"slot_finder:slot_finder"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMq struct {
		Enabled bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri string `env:"RABBITMQ_URL"`

		QueueConfig struct {
			CalendarQueueName     string `env:"RABBITMQ_CALENDAR_QUEUE" envDefault:"slot-finder.calendar-event"`
			CalendarQueueBind     string `env:"RABBITMQ_CALENDAR_QUEUE_BIND" envDefault:"calendar.slot-finder-svc.calendarevent.*.*"`
			CalendarQueueExchange string `env:"RABBITMQ_CALENDAR_QUEUE_EXCHANGE" envDefault:"calendar"`
			AllQueueName          string `env:"RABBITMQ_ALL_QUEUE" envDefault:"slot-finder._all_"`
			AllQueueBind          string `env:"RABBITMQ_ALL_QUEUE_BIND" envDefault:"calendar.slot-finder-svc._all_.*.*"`
			AllQueueExchange      string `env:"RABBITMQ_ALL_QUEUE_EXCHANGE" envDefault:"calendar"`
		}
	}

	Cache struct {
		Enabled    bool `env:"CACHE_ENABLED"`
		EventsSize int  `env:"CACHE_EVENTS_SIZE" envDefault:"1000"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	// Приведение окружения к нижнему регистру для унификации
	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	// Разбираем пары логин:пароль для basic-авторизации
	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Без RabbitMQ кэш сбрасывать некому, поэтому и не включаем
	if !cfg.RabbitMq.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
