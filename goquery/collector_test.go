package goquery_test

import (
	"testing"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
	"github.com/MartiniMK/rss-epiotrkow/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPageURL = "https://epiotrkow.pl/news/"

func TestListingCollector_Collect(t *testing.T) {
	t.Parallel()

	t.Run("collects articles from the primary tile strategy", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><body>
<div class="tn-img">
	<a href="/news/pozar-w-centrum,59675"><span class="tn-title">Pożar w centrum</span></a>
</div>
</body></html>`

		c := goquery.NewListingCollector(epiotrkow.DefaultConfig())
		items, err := c.Collect(html, listingPageURL)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "https://epiotrkow.pl/news/pozar-w-centrum,59675", items[0].URL)
		assert.Equal(t, "Pożar w centrum", items[0].Title)
		assert.Equal(t, epiotrkow.ItemID(items[0].URL), items[0].ID)
	})

	t.Run("takes the union of all strategies", func(t *testing.T) {
		t.Parallel()

		// One article appears only under the secondary tile strategy, the
		// other only as a bare anchor caught by the fallback strategy. Both
		// must show up; a first-non-empty cascade would miss one.
		html := `<!DOCTYPE html>
<html><body>
<div class="bg-white">
	<a href="/news/koncert-na-rynku,59001"><h5 class="tn-title">Koncert na rynku</h5></a>
</div>
<div class="list-plain">
	<a href="/news/remont-ulicy,59002">Remont ulicy</a>
</div>
</body></html>`

		c := goquery.NewListingCollector(epiotrkow.DefaultConfig())
		items, err := c.Collect(html, listingPageURL)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "https://epiotrkow.pl/news/koncert-na-rynku,59001", items[0].URL)
		assert.Equal(t, "https://epiotrkow.pl/news/remont-ulicy,59002", items[1].URL)
	})

	t.Run("discards anchors without the numeric article id", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><body>
<a href="/news/example-article,59675">Artykuł</a>
<a href="/news/wydarzenia-p2">Następna strona</a>
<a href="/news/">Wszystkie newsy</a>
</body></html>`

		c := goquery.NewListingCollector(epiotrkow.DefaultConfig())
		items, err := c.Collect(html, listingPageURL)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "https://epiotrkow.pl/news/example-article,59675", items[0].URL)
	})

	t.Run("deduplicates anchors by raw href within the page", func(t *testing.T) {
		t.Parallel()

		// The same tile anchor matches both the primary strategy and the
		// fallback strategy; it must be collected once, from the primary one.
		html := `<!DOCTYPE html>
<html><body>
<div class="tn-img">
	<a href="/news/jeden-artykul,59100"><span class="tn-title">Jeden artykuł</span></a>
</div>
</body></html>`

		c := goquery.NewListingCollector(epiotrkow.DefaultConfig())
		items, err := c.Collect(html, listingPageURL)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Jeden artykuł", items[0].Title)
	})

	t.Run("orders items by strategy then document order", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><body>
<a href="/news/fallback-pierwszy,59201">Z listy</a>
<div class="tn-img">
	<a href="/news/kafel-glowny,59202"><span class="tn-title">Kafel</span></a>
</div>
</body></html>`

		c := goquery.NewListingCollector(epiotrkow.DefaultConfig())
		items, err := c.Collect(html, listingPageURL)

		require.NoError(t, err)
		require.Len(t, items, 2)
		// The primary-tile strategy runs first even though its anchor comes
		// later in the document.
		assert.Equal(t, "https://epiotrkow.pl/news/kafel-glowny,59202", items[0].URL)
		assert.Equal(t, "https://epiotrkow.pl/news/fallback-pierwszy,59201", items[1].URL)
	})

	t.Run("returns no items for markup without matches", func(t *testing.T) {
		t.Parallel()

		c := goquery.NewListingCollector(epiotrkow.DefaultConfig())
		items, err := c.Collect("<html><body><p>Brak newsów</p></body></html>", listingPageURL)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("rejects an unparseable page URL", func(t *testing.T) {
		t.Parallel()

		c := goquery.NewListingCollector(epiotrkow.DefaultConfig())
		_, err := c.Collect("<html></html>", "://not-a-url")

		require.Error(t, err)
		assert.Equal(t, epiotrkow.EINVALID, epiotrkow.ErrorCode(err))
	})
}
