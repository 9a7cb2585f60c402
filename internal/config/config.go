package config

import (
	"time"

	"github.com/dmitrijs2005/niconico"
)

// Config holds runtime settings for the nicologin CLI.
type Config struct {
	LoginURL  string        `env:"NICONICO_LOGIN_URL"`
	UserAgent string        `env:"NICONICO_USER_AGENT"`
	Timeout   time.Duration `env:"NICONICO_TIMEOUT"`
	StorePath string        `env:"NICONICO_STORE"`
	LogFormat string        `env:"NICONICO_LOG_FORMAT"`
	UseCached bool
	Forget    bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.LoginURL = niconico.DefaultEndpoint
	c.UserAgent = niconico.DefaultUserAgent
	c.Timeout = 10 * time.Second
	c.StorePath = ""
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and args (usually os.Args[1:]), in that order. It panics on malformed
// input; the caller decides whether to recover.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
