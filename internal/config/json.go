package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/niconico/internal/flagx"
	"github.com/dmitrijs2005/niconico/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent fields keep
// their current values.
type JsonConfig struct {
	LoginURL  *string         `json:"login_url"`
	UserAgent *string         `json:"user_agent"`
	Timeout   *timex.Duration `json:"timeout"`
	StorePath *string         `json:"store_path"`
	LogFormat *string         `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c/-config in args. It does
// nothing when no file is given and panics when the file cannot be read or
// decoded.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.LoginURL != nil {
		cfg.LoginURL = *jc.LoginURL
	}
	if jc.UserAgent != nil {
		cfg.UserAgent = *jc.UserAgent
	}
	if jc.Timeout != nil {
		cfg.Timeout = jc.Timeout.Duration
	}
	if jc.StorePath != nil {
		cfg.StorePath = *jc.StorePath
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
}
