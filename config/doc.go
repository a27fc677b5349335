// Package config loads and validates service configuration.
//
// It uses Viper to read a YAML config file with environment-variable
// overrides, and godotenv for .env files. Each configuration section is a
// struct with yaml/mapstructure tags and ApplyDefaults/Validate methods;
// services embed ServiceConfig and add their own sections.
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	}
//
//	var cfg AppConfig
//	err := config.Load("posts-api", &cfg, config.WithConfigFile("config.yml"))
package config
