package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is satisfied by any struct embedding ServiceConfig.
type Config interface {
	GetServiceConfig() *ServiceConfig
	ApplyDefaults()
	Validate() error
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*loaderOptions)

type loaderOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path instead of searching.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path instead of searching.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOptions) { o.envFile = path }
}

// Load reads configuration for a service into cfg: YAML file first, then
// .env, then process environment variables (highest precedence). Afterwards
// it applies defaults and validates, so a successfully loaded config is
// always usable.
func Load(serviceName string, cfg Config, opts ...LoaderOption) error {
	var o loaderOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.envFile == "" {
		o.envFile = findFirst(".env."+serviceName, ".env")
	}
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", o.envFile, err)
		}
	}

	v := viper.New()
	if o.configFile == "" {
		o.configFile = findFirst("config.yml", "config.yaml", "config/config.yml")
	}
	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", o.configFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal for service %s: %w", serviceName, err)
	}

	cfg.ApplyDefaults()
	if name := cfg.GetServiceConfig(); name.Name == "" {
		name.Name = serviceName
	}
	return cfg.Validate()
}

// findFirst returns the first existing path, or "".
func findFirst(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// bindEnvVars maps UPPER_SNAKE environment variables onto nested viper keys
// so GUARD_SIGNATURE_SECRET overrides guard.signature.secret.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || pair[0] == "" {
			continue
		}
		key := strings.ToLower(pair[0])
		v.Set(strings.ReplaceAll(key, "_", "."), pair[1])
	}
}
