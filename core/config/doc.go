// Package config loads the application configuration from environment
// variables and an optional .env file.
//
// Each concern owns its partial config struct (logger.Config,
// database.Config, legacyhtml.Config, ...); this package composes them
// and binds defaults declared via `default` struct tags. Environment
// variables map onto nested keys by underscore, e.g. DATABASE_HOST ->
// database.host, SOURCE_CACHE_DIR -> source.cache_dir.
package config
