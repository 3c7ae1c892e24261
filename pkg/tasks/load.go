package tasks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/lineinfile/pkg/errors"
	"github.com/arthur-debert/lineinfile/pkg/params"
	"github.com/arthur-debert/lineinfile/pkg/suggest"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// File is a parsed task file.
type File struct {
	Tasks []params.Raw `koanf:"tasks"`
	// Source is the path the file was read from.
	Source string `koanf:"-"`
}

// parserFor picks the koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		ext := filepath.Ext(path)
		return nil, errors.Newf(errors.ErrTasksLoad, "unsupported task file extension %q (expected .toml, .yaml or .yml)%s",
			ext, suggest.Hint(ext, []string{".toml", ".yaml", ".yml"})).
			WithDetail("path", path)
	}
}

// Load reads the task file at path.
func Load(path string) (*File, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTasksLoad, "task file %s not found", path).
			WithDetail("path", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTasksLoad, "failed to parse task file %s", path).
			WithDetail("path", path)
	}

	var f File
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &f,
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	}
	if err := k.UnmarshalWithConf("", &f, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrTasksLoad, "invalid task file %s", path).
			WithDetail("path", path)
	}

	if len(f.Tasks) == 0 {
		return nil, errors.Newf(errors.ErrTasksLoad, "task file %s has no tasks", path).
			WithDetail("path", path)
	}

	f.Source = path
	return &f, nil
}
