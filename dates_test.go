package epiotrkow_test

import (
	"testing"
	"time"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	months := epiotrkow.DefaultConfig().Months

	t.Run("parses ISO-8601 with Z suffix", func(t *testing.T) {
		t.Parallel()

		got, ok := epiotrkow.ParseDate("2025-09-28T08:15:00Z", months, 12)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.September, 28, 8, 15, 0, 0, time.UTC), got)
	})

	t.Run("parses ISO-8601 without zone as UTC", func(t *testing.T) {
		t.Parallel()

		got, ok := epiotrkow.ParseDate("2025-09-28T08:15:00", months, 12)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.September, 28, 8, 15, 0, 0, time.UTC), got)
	})

	t.Run("normalizes zoned timestamps to UTC", func(t *testing.T) {
		t.Parallel()

		got, ok := epiotrkow.ParseDate("2025-09-28T10:15:00+02:00", months, 12)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.September, 28, 8, 15, 0, 0, time.UTC), got)
		assert.Equal(t, time.UTC, got.Location())
	})

	t.Run("parses Polish textual date at the default hour", func(t *testing.T) {
		t.Parallel()

		got, ok := epiotrkow.ParseDate("28 września 2025", months, 12)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.September, 28, 12, 0, 0, 0, time.UTC), got)
	})

	t.Run("accepts diacritic-stripped month spelling", func(t *testing.T) {
		t.Parallel()

		got, ok := epiotrkow.ParseDate("5 wrzesnia 2025", months, 12)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.September, 5, 12, 0, 0, 0, time.UTC), got)
	})

	t.Run("uses clock time when the textual date carries one", func(t *testing.T) {
		t.Parallel()

		got, ok := epiotrkow.ParseDate("28 września 2025, 18:30", months, 12)

		require.True(t, ok)
		assert.Equal(t, time.Date(2025, time.September, 28, 18, 30, 0, 0, time.UTC), got)
	})

	t.Run("unknown month name yields no date", func(t *testing.T) {
		t.Parallel()

		_, ok := epiotrkow.ParseDate("28 septembrie 2025", months, 12)

		assert.False(t, ok)
	})

	t.Run("garbage yields no date", func(t *testing.T) {
		t.Parallel()

		_, ok := epiotrkow.ParseDate("wczoraj wieczorem", months, 12)

		assert.False(t, ok)
	})

	t.Run("empty input yields no date", func(t *testing.T) {
		t.Parallel()

		_, ok := epiotrkow.ParseDate("  ", months, 12)

		assert.False(t, ok)
	})
}
