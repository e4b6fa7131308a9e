// Package config loads typed configuration structs from environment
// variables using struct tags, with optional .env file support for local
// development.
//
// # Usage
//
//	type ServerConfig struct {
//		Addr         string `env:"ADDR" envDefault:":8080"`
//		LogFormat    string `env:"LOG_FORMAT" envDefault:"json"`
//		CookieSecret string `env:"COOKIE_SECRET,required"`
//	}
//
//	var cfg ServerConfig
//	config.MustLoad(&cfg)
//
// The .env file is loaded at most once per process; real environment
// variables always take precedence over file values.
package config
