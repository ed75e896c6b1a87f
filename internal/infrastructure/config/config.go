package config

import (
	"github.com/caarlos0/env/v10"
)

// Config is the full runtime configuration, populated from the environment.
// Defaults are local-development friendly; a .env file is loaded by the
// godotenv autoload import in main.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	HTTP   HTTPServer `envPrefix:"HTTP_"`
	Auth   Auth       `envPrefix:"AUTH_"`
	AWS    AWS        ``
	Tables Tables     ``
	Redis  Redis      `envPrefix:"REDIS_"`
	Gemini Gemini     `envPrefix:"GEMINI_"`

	// WhatsAppNumber is the follow-up contact surfaced after a successful
	// checkout.
	WhatsAppNumber string `env:"WHATSAPP_NUMBER" envDefault:"8801711000000"`
}

type HTTPServer struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`
}

type Auth struct {
	// AdminEmail grants the admin role to exactly one account.
	AdminEmail    string `env:"ADMIN_EMAIL" envDefault:"admin@webuxbd.com"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"local-dev-secret"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS" envDefault:"72"`
}

type AWS struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	// DynamoDBEndpoint points at a local DynamoDB when set
	// (e.g. http://dynamodb:8000).
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

type Tables struct {
	Orders string `env:"ORDERS_TABLE" envDefault:"orders"`
	Users  string `env:"USERS_TABLE" envDefault:"users"`
}

type Redis struct {
	// Addr left empty disables caching and token revocation entirely.
	Addr string `env:"ADDR"`
}

type Gemini struct {
	// APIKey left empty keeps the domain advisor in fallback mode.
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.5-flash"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
