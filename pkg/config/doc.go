// Package config loads typed configuration structs from environment variables.
//
// Configuration is constructed explicitly at process start and passed by value
// to the components that need it. There is no hidden global state: a missing
// required variable fails Load (or panics via MustLoad) during startup rather
// than on first use deep inside a request path.
//
// Structs use caarlos0/env field tags:
//
//	type ServerConfig struct {
//		Host string `env:"HOST" envDefault:"localhost"`
//		Port int    `env:"PORT,required"`
//	}
//
// A .env file in the working directory is loaded once, if present, before the
// process environment is read.
package config
