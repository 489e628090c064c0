package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks environment variables that override file settings.
	EnvPrefix = "STOREFRONT_"
	// ProfileEnv names the variable that selects the profile YAML.
	ProfileEnv = EnvPrefix + "PROFILE"

	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// Load builds the service Config for profile. Later sources win:
// built-in defaults, {dir}/base.yaml, {dir}/{profile}.yaml, then
// STOREFRONT_* variables. Variables are matched against keys the earlier
// sources defined, so STOREFRONT_STORE_SQLITE_PATH sets store.sqlite_path
// rather than store.sqlite.path.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKeyResolver(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading %s* variables: %w", EnvPrefix, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// validateProfile rejects names that could read a file outside the config
// directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain file name", profile)
	}
	return nil
}

// envKeyResolver maps STOREFRONT_CLIENT_RETRY_MAX_ATTEMPTS to a known key
// such as client.retry.max_attempts. Unknown variables fall back to treating
// every underscore as a level separator.
func envKeyResolver(known []string) func(key, value string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}
	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if k, ok := byEnvName[name]; ok {
			return k, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}
