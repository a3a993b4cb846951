package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/puntadelverde-srpm/srpm/internal/domain/entity"
)

// DefaultSources is the registry used when no sources file is configured.
var DefaultSources = []entity.Source{
	{Name: "20minutos", FeedURL: "https://www.20minutos.es/rss/"},
	{Name: "COPE", FeedURL: "https://www.cope.es/api/es/news/rss.xml"},
	{Name: "elDiario", FeedURL: "https://www.eldiario.es/rss/"},
}

// sourcesFile is the on-disk layout:
//
//	sources:
//	  - name: COPE
//	    url: https://www.cope.es/api/es/news/rss.xml
type sourcesFile struct {
	Sources []entity.Source `yaml:"sources"`
}

// ErrNoSources is returned when a sources file declares no feeds.
var ErrNoSources = errors.New("no feed sources configured")

// LoadSources reads the feed registry from a YAML file. An empty path yields a
// copy of DefaultSources. Order in the file is the processing order.
func LoadSources(path string) ([]entity.Source, error) {
	if path == "" {
		out := make([]entity.Source, len(DefaultSources))
		copy(out, DefaultSources)
		return out, nil
	}

	// #nosec G304 -- path comes from operator configuration, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}
	return ParseSources(data)
}

// ParseSources decodes and validates a YAML sources document.
func ParseSources(data []byte) ([]entity.Source, error) {
	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}
	if len(file.Sources) == 0 {
		return nil, ErrNoSources
	}

	seen := make(map[string]bool, len(file.Sources))
	for i := range file.Sources {
		src := &file.Sources[i]
		src.Name = strings.TrimSpace(src.Name)
		src.FeedURL = strings.TrimSpace(src.FeedURL)
		if err := src.Validate(); err != nil {
			return nil, fmt.Errorf("source #%d: %w", i+1, err)
		}
		key := strings.ToLower(src.Name)
		if seen[key] {
			return nil, fmt.Errorf("source #%d: duplicate name %q", i+1, src.Name)
		}
		seen[key] = true
	}
	return file.Sources, nil
}
