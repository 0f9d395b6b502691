package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	sferrors "github.com/superflow-dev/superflow-extension/pkg/errors"
)

// EnvPrefix is the prefix of environment variables read into the configuration
const EnvPrefix = "SUPERFLOW_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// configFileNames are looked up, in order, in the working directory
var configFileNames = []string{"superflow.toml", ".superflow.toml"}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile is an explicit config path; it must exist when set.
	ConfigFile string
	// WorkDir is searched for superflow.toml when ConfigFile is empty.
	WorkDir string
	// Overrides are applied last, keyed by dotted path ("inject.mode").
	Overrides map[string]interface{}
}

// Default returns the configuration built from the embedded defaults only
func Default() *Config {
	cfg, err := load(LoadOptions{}, false)
	if err != nil {
		// The embedded defaults are part of the binary; failing here is a build defect.
		panic(err)
	}
	return cfg
}

// Load resolves the configuration from defaults, file, environment and overrides
func Load(opts LoadOptions) (*Config, error) {
	return load(opts, true)
}

func load(opts LoadOptions, external bool) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, sferrors.Wrap(err, sferrors.ErrConfigLoad, "failed to load defaults")
	}

	if external {
		// 2. Config file
		path, err := resolveConfigFile(opts)
		if err != nil {
			return nil, err
		}
		if path != "" {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, sferrors.Wrap(err, sferrors.ErrConfigParse, "failed to load config file").
					WithDetail("path", path)
			}
		}

		// 3. Environment
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, sferrors.Wrap(err, sferrors.ErrConfigLoad, "failed to load env vars")
		}

		// 4. Flag overrides
		if len(opts.Overrides) > 0 {
			if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
				return nil, sferrors.Wrap(err, sferrors.ErrConfigLoad, "failed to apply overrides")
			}
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToSwitchHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, sferrors.Wrap(err, sferrors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.raw = k.Raw()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// stringToSwitchHookFunc decodes boolean strings. Values strconv cannot read
// are on when non-empty ("yes", "on", "enabled").
func stringToSwitchHookFunc() mapstructure.DecodeHookFuncKind {
	return func(from, to reflect.Kind, data interface{}) (interface{}, error) {
		if from != reflect.String || to != reflect.Bool {
			return data, nil
		}
		raw := strings.TrimSpace(data.(string))
		if b, err := strconv.ParseBool(raw); err == nil {
			return b, nil
		}
		return raw != "", nil
	}
}

// envKey maps SUPERFLOW_API_BASE_URL to api.base_url: the first underscore
// separates the section, the rest belong to the key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

func resolveConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", sferrors.Wrap(err, sferrors.ErrConfigLoad, "config file not readable").
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	if opts.WorkDir == "" {
		return "", nil
	}
	for _, name := range configFileNames {
		path := filepath.Join(opts.WorkDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}
