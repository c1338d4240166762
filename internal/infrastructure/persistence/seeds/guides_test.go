package seeds

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpcenter/internal/shared/logger"
)

type slugSet map[string]bool

func (s slugSet) SlugExists(_ context.Context, slug string, _ uint) (bool, error) {
	return s[slug], nil
}

func TestLoadGuides_Defaults(t *testing.T) {
	guides, err := LoadGuides("")
	require.NoError(t, err)
	require.NotEmpty(t, guides)
	assert.Equal(t, "Store setup", guides[0].Title)
	assert.Len(t, guides[0].Steps, 4)
	assert.Equal(t, "VENDOR", guides[0].Audience)
}

func TestLoadGuides_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("guides:\n  - title: Café Setup\n    steps:\n      - title: One\n"), 0o600))

	guides, err := LoadGuides(path)
	require.NoError(t, err)
	require.Len(t, guides, 1)
	assert.Equal(t, "Café Setup", guides[0].Title)
}

func TestParseGuides_Rejects(t *testing.T) {
	_, err := ParseGuides(strings.NewReader("guides:\n  - title: A\n    colour: red\n"))
	assert.Error(t, err, "unknown keys")

	_, err = ParseGuides(strings.NewReader("guides:\n  - description: untitled\n"))
	assert.Error(t, err, "missing title")

	guides, err := ParseGuides(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, guides)
}

func TestSeedGuides_SkipsExistingSlugs(t *testing.T) {
	seeds := []GuideSeed{{Title: "Store setup"}, {Title: "Café Setup"}}
	var created []string

	n, err := SeedGuides(context.Background(), seeds, slugSet{"store-setup": true},
		func(_ context.Context, s GuideSeed) error {
			created = append(created, s.Title)
			return nil
		}, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"Café Setup"}, created)
}

func TestSeedGuides_StopsOnCreateError(t *testing.T) {
	seeds := []GuideSeed{{Title: "A"}, {Title: "B"}}
	n, err := SeedGuides(context.Background(), seeds, slugSet{},
		func(context.Context, GuideSeed) error { return errors.New("boom") }, logger.NewNop())
	require.Error(t, err)
	assert.Equal(t, 0, n)
}
