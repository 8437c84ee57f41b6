package auth

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds JWT settings for the login gate. Values come from
// auth.yaml when present, with the JWT secret overridable via environment.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
	Issuer    string        `mapstructure:"issuer"`
}

// LoadAuthConfig reads auth.yaml from the given paths. A missing file is
// fine; defaults and the fallback secret apply.
func LoadAuthConfig(fallbackSecret string, paths ...string) (*AuthConfig, error) {
	v := viper.New()
	v.SetConfigName("auth")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if len(paths) == 0 {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("token_ttl", "12h")
	v.SetDefault("issuer", "equipment-assignment-backend")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if config.JWTSecret == "" {
		config.JWTSecret = fallbackSecret
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, err
	}

	return &config, nil
}

// ValidateConfig checks that the auth configuration is usable
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive")
	}
	return nil
}
