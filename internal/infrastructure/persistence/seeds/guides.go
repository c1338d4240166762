// Package seeds loads fixture content into a fresh help center.
package seeds

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"helpcenter/internal/domain/content"
	"helpcenter/internal/shared/logger"
)

//go:embed guides.yaml
var defaultGuides []byte

type GuideStepSeed struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type GuideSeed struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Audience    string          `yaml:"audience"`
	Status      string          `yaml:"status"`
	Steps       []GuideStepSeed `yaml:"steps"`
}

type guideFile struct {
	Guides []GuideSeed `yaml:"guides"`
}

// GuideCreator persists one seed, normally through the create guide use case
// so that slugs and publication state follow the usual rules.
type GuideCreator func(ctx context.Context, seed GuideSeed) error

// ParseGuides decodes a guides document. Unknown keys are rejected.
func ParseGuides(r io.Reader) ([]GuideSeed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file guideFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse guide seeds: %w", err)
	}
	for i, g := range file.Guides {
		if strings.TrimSpace(g.Title) == "" {
			return nil, fmt.Errorf("guide seed %d has no title", i)
		}
	}
	return file.Guides, nil
}

// LoadGuides reads seeds from path, or the bundled defaults when path is empty.
func LoadGuides(path string) ([]GuideSeed, error) {
	if path == "" {
		return ParseGuides(strings.NewReader(string(defaultGuides)))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open guide seeds: %w", err)
	}
	defer f.Close()
	return ParseGuides(f)
}

// SeedGuides creates every seed whose slug is not taken yet, so running it
// twice is harmless. It returns the number of guides created.
func SeedGuides(ctx context.Context, seeds []GuideSeed, registry content.SlugRegistry, create GuideCreator, log logger.Interface) (int, error) {
	created := 0
	for _, seed := range seeds {
		slug := content.NormalizeSlug(seed.Title, time.Now())
		exists, err := registry.SlugExists(ctx, slug, 0)
		if err != nil {
			return created, fmt.Errorf("failed to check guide %q: %w", slug, err)
		}
		if exists {
			log.Infow("guide already present, skipping", "slug", slug)
			continue
		}
		if err := create(ctx, seed); err != nil {
			return created, fmt.Errorf("failed to seed guide %q: %w", seed.Title, err)
		}
		created++
	}
	log.Infow("guide seeding finished", "created", created, "total", len(seeds))
	return created, nil
}
