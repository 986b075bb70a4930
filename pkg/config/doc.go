// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Every collaborator package in this module declares its own Config struct
// with `env` tags and loads it through config.Load:
//
//	type Config struct {
//		Route      string `env:"BACKEND_ROUTE,required"`
//		InstanceID string `env:"BACKEND_INSTANCE_ID,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// Parsed configs are cached per type, so repeated loads are cheap and
// deterministic within a process.
package config
