// Package config loads runtime configuration for the nicologin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables (NICONICO_*).
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-u string   login endpoint URL
//	-a string   User-Agent header
//	-t int      request timeout (seconds)
//	-s string   SQLite session store path ("" disables the store)
//	-l string   log format: text or json
//	-cached     print the stored session instead of logging in
//
// # JSON schema
//
//	{
//	  "login_url": "https://account.nicovideo.jp/login/redirector",
//	  "user_agent": "toof-jp/niconico",
//	  "timeout": "10s",
//	  "store_path": "sessions.db",
//	  "log_format": "text"
//	}
//
// Account credentials are not part of Config; see LoadCredentials.
package config
