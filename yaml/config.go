// Package yaml reads and writes the titlespec config file.
package yaml

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/titlespec"
	"gopkg.in/yaml.v3"
)

// LoadConfig overlays the YAML file at path onto base. Keys absent from the
// file keep their base values. A missing file returns base unchanged.
func LoadConfig(path string, base titlespec.Config) (titlespec.Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	} else if err != nil {
		return base, err
	}

	cfg := base
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return base, titlespec.Errorf(titlespec.EINVALID, "parse config %s: %v", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path atomically. An existing file is kept as
// path.bak.
func SaveConfig(path string, cfg titlespec.Config) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
