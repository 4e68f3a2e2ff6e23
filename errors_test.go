package epiotrkow_test

import (
	"errors"
	"fmt"
	"testing"

	epiotrkow "github.com/MartiniMK/rss-epiotrkow"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns the code of an application error", func(t *testing.T) {
		t.Parallel()

		err := epiotrkow.Errorf(epiotrkow.EUNAVAILABLE, "page unreachable")
		assert.Equal(t, epiotrkow.EUNAVAILABLE, epiotrkow.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("fetch: %w", epiotrkow.Errorf(epiotrkow.EINVALID, "bad URL"))
		assert.Equal(t, epiotrkow.EINVALID, epiotrkow.ErrorCode(err))
	})

	t.Run("treats foreign errors as internal", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, epiotrkow.EINTERNAL, epiotrkow.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, epiotrkow.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns the message of an application error", func(t *testing.T) {
		t.Parallel()

		err := epiotrkow.Errorf(epiotrkow.EINVALID, "bad selector %q", "x[")
		assert.Equal(t, `bad selector "x["`, epiotrkow.ErrorMessage(err))
	})

	t.Run("masks foreign errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", epiotrkow.ErrorMessage(errors.New("boom")))
	})
}
