// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags (env, envDefault,
// required). Load reads a .env file once, parses the environment and caches
// the result per type, so packages can load the same config struct without
// re-parsing. LoadFrom parses an explicit map and is meant for tests.
package config
