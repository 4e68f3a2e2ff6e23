package epiotrkow_test

import (
	"testing"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := epiotrkow.DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Strategies, 3)
	assert.True(t, cfg.ArticlePathPattern.MatchString("/news/example-article,59675"))
	assert.False(t, cfg.ArticlePathPattern.MatchString("/news/wydarzenia-p2"))
}

func TestConfig_ListingPages(t *testing.T) {
	t.Parallel()

	cfg := epiotrkow.DefaultConfig()
	pages := cfg.ListingPages()

	require.Len(t, pages, 9)
	assert.Equal(t, "https://epiotrkow.pl/news/", pages[0])
	assert.Equal(t, "https://epiotrkow.pl/news/wydarzenia-p2", pages[1])
	assert.Equal(t, "https://epiotrkow.pl/news/wydarzenia-p9", pages[8])
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("rejects missing base URL", func(t *testing.T) {
		t.Parallel()

		cfg := epiotrkow.DefaultConfig()
		cfg.BaseURL = ""
		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, epiotrkow.EINVALID, epiotrkow.ErrorCode(err))
	})

	t.Run("rejects empty strategy list", func(t *testing.T) {
		t.Parallel()

		cfg := epiotrkow.DefaultConfig()
		cfg.Strategies = nil
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects zero page count", func(t *testing.T) {
		t.Parallel()

		cfg := epiotrkow.DefaultConfig()
		cfg.PageCount = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("allows a zero enrich limit", func(t *testing.T) {
		t.Parallel()

		cfg := epiotrkow.DefaultConfig()
		cfg.EnrichLimit = 0
		assert.NoError(t, cfg.Validate())
	})
}
