package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// contentPack is the on-disk shape of a YAML content pack file.
type contentPack struct {
	Contents []Content `yaml:"contents"`
}

// LoadDir reads every *.yaml / *.yml file under dir and returns the content
// units they declare, validated. Files are visited in lexical order so packs
// load deterministically.
func LoadDir(dir string) ([]Content, error) {
	var loaded []Content

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isYAML(path) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		var pack contentPack
		if err := yaml.Unmarshal(data, &pack); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		for i := range pack.Contents {
			if err := pack.Contents[i].Validate(); err != nil {
				return fmt.Errorf("%s: content %d: %w", path, i+1, err)
			}
		}
		loaded = append(loaded, pack.Contents...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// AddDir loads a content pack directory into the library.
func (l *Library) AddDir(dir string) (int, error) {
	contents, err := LoadDir(dir)
	if err != nil {
		return 0, err
	}
	for _, c := range contents {
		if err := l.Add(c); err != nil {
			return 0, err
		}
	}
	return len(contents), nil
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}
