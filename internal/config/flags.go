package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/niconico/internal/flagx"
)

// knownFlags lists the flags parseFlags handles, in both the single and
// double dash forms accepted by package flag.
var knownFlags = []string{
	"-u", "--u",
	"-a", "--a",
	"-t", "--t",
	"-s", "--s",
	"-l", "--l",
	"-cached", "--cached",
	"-forget", "--forget",
}

// parseFlags populates Config fields from args. Flags it does not know
// (including -c/-config, handled by parseJson) are filtered out first.
// It panics on malformed values.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("nicologin", flag.ContinueOnError)

	fs.StringVar(&cfg.LoginURL, "u", cfg.LoginURL, "login endpoint URL")
	fs.StringVar(&cfg.UserAgent, "a", cfg.UserAgent, "User-Agent header")
	timeout := fs.Int("t", int(cfg.Timeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "SQLite session store path")
	fs.StringVar(&cfg.LogFormat, "l", cfg.LogFormat, "log format: text or json")
	fs.BoolVar(&cfg.UseCached, "cached", cfg.UseCached, "print the stored session instead of logging in")
	fs.BoolVar(&cfg.Forget, "forget", cfg.Forget, "remove the stored session and exit")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		panic(err)
	}

	// Timeout changes only when -t is given explicitly.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.Timeout = time.Duration(*timeout) * time.Second
		}
	})
}
