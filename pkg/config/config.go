package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/paths"
	"github.com/arthur-debert/lineinfile/pkg/suggest"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "LINEINFILE_"

// FileMode is an os.FileMode written as an octal string in config files.
type FileMode os.FileMode

// MarshalText renders the mode as "0644".
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%04o", uint32(m))), nil
}

// UnmarshalText parses an octal mode.
func (m *FileMode) UnmarshalText(text []byte) error {
	v, err := strconv.ParseUint(string(text), 8, 32)
	if err != nil {
		return fmt.Errorf("invalid file mode %q: %w", string(text), err)
	}
	*m = FileMode(v)
	return nil
}

// Perm returns the mode as os.FileMode.
func (m FileMode) Perm() os.FileMode { return os.FileMode(m) }

// Files controls permissions of created files and directories
type Files struct {
	Mode    FileMode `koanf:"mode" toml:"mode"`
	DirMode FileMode `koanf:"dir_mode" toml:"dir_mode"`
}

// Backup controls backup naming
type Backup struct {
	TimeFormat string `koanf:"time_format" toml:"time_format"`
}

// Output controls result rendering
type Output struct {
	Format string `koanf:"format" toml:"format"`
	Color  bool   `koanf:"color" toml:"color"`
}

// Config is the complete lineinfile configuration
type Config struct {
	Files  Files  `koanf:"files" toml:"files"`
	Backup Backup `koanf:"backup" toml:"backup"`
	Output Output `koanf:"output" toml:"output"`

	// Source is the config file that was loaded, empty when none was found.
	Source string `koanf:"-" toml:"-"`
}

// DefaultPath returns the user configuration file location.
func DefaultPath() string {
	return paths.ConfigFile()
}

// StylesPath returns the location of the optional user styles file.
func StylesPath() string {
	return paths.StylesFile()
}

// Default returns the configuration made of the embedded defaults only.
func Default() *Config {
	cfg, err := load("", false)
	if err != nil {
		// The embedded defaults are part of the binary; failing here is a build problem
		panic(fmt.Sprintf("invalid embedded defaults: %v", err))
	}
	return cfg
}

// Load builds the configuration. path names an explicit config file, which
// must exist; when empty, DefaultPath is used if present.
func Load(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, withUser bool) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	var source string
	if withUser {
		// 2. User config file
		explicit := path != ""
		if !explicit {
			path = DefaultPath()
		}
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
			}
			source = path
		} else if explicit {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path)
		}

		// 3. Environment, LINEINFILE_BACKUP_TIME_FORMAT -> backup.time_format
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
			return strings.Replace(key, "_", ".", 1)
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				fileModeHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	cfg.Source = source
	return &cfg, nil
}

// fileModeHookFunc decodes octal strings into FileMode. Integers are taken
// as already decoded permission bits.
func fileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(FileMode(0)) {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			var m FileMode
			if err := m.UnmarshalText([]byte(v)); err != nil {
				return nil, err
			}
			return m, nil
		case int64:
			return FileMode(v), nil
		case int:
			return FileMode(v), nil
		}
		return data, nil
	}
}

func validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json", "yaml":
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown output.format %q (expected text, json or yaml)%s",
			cfg.Output.Format, suggest.Hint(cfg.Output.Format, []string{"text", "json", "yaml"}))
	}
	if cfg.Backup.TimeFormat == "" {
		return errors.New(errors.ErrConfigParse, "backup.time_format must not be empty")
	}
	if cfg.Files.Mode.Perm() > 0o7777 || cfg.Files.DirMode.Perm() > 0o7777 {
		return errors.New(errors.ErrConfigParse, "file modes must be permission bits")
	}
	return nil
}
