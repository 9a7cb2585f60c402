package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/niconico"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with NICONICO_* variables. Unset variables leave the
// field untouched.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}

// LoadCredentials reads MAIL_TEL and PASSWORD from the environment. When
// dotenv names an existing file, its variables are loaded first without
// overriding variables that are already set. A missing dotenv file is not an
// error.
func LoadCredentials(dotenv string) (niconico.Credentials, error) {
	var creds niconico.Credentials

	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return creds, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	if err := env.Parse(&creds); err != nil {
		return creds, fmt.Errorf("parse credentials: %w", err)
	}
	return creds, nil
}
