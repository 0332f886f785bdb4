package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAppPort = "8000"

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoEndpoint     string

	FoodTable  string
	OrderTable string

	FrontendOrigin string
}

// LoadConfig reads .env (when present) and the process environment.
// Region, table names and the frontend origin have no defaults.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:            os.Getenv("APP_PORT"),
		AppEnv:             os.Getenv("APP_ENV"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DynamoEndpoint:     os.Getenv("DYNAMODB_ENDPOINT"),
		FoodTable:          os.Getenv("FOOD_TABLE_NAME"),
		OrderTable:         os.Getenv("ORDER_TABLE_NAME"),
		FrontendOrigin:     strings.TrimRight(os.Getenv("FRONTEND_ORIGIN"), "/"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = defaultAppPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	var missing []string
	if c.AWSRegion == "" {
		missing = append(missing, "AWS_REGION")
	}
	if c.FoodTable == "" {
		missing = append(missing, "FOOD_TABLE_NAME")
	}
	if c.OrderTable == "" {
		missing = append(missing, "ORDER_TABLE_NAME")
	}
	if c.FrontendOrigin == "" {
		missing = append(missing, "FRONTEND_ORIGIN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}

	if (c.AWSAccessKeyID == "") != (c.AWSSecretAccessKey == "") {
		return errors.New("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set together")
	}

	return nil
}

// IsProduction reports whether store error details must be kept out of responses.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
