package textdiff_test

import (
	"testing"
	"time"

	textdiff "github.com/honlnk/text-diff-viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOptions(t *testing.T) {
	t.Parallel()

	t.Run("accepts default options", func(t *testing.T) {
		t.Parallel()

		errs := textdiff.ValidateOptions(textdiff.DefaultOptions())

		assert.Nil(t, errs)
	})

	t.Run("rejects zero timeout", func(t *testing.T) {
		t.Parallel()

		opts := textdiff.DefaultOptions()
		opts.Timeout = 0

		errs := textdiff.ValidateOptions(opts)

		require.Len(t, errs, 1)
		assert.Equal(t, "timeout", errs[0].Field)
		assert.Equal(t, textdiff.ErrInvalidTimeout, errs[0].Reason)
	})

	t.Run("rejects negative timeout", func(t *testing.T) {
		t.Parallel()

		opts := textdiff.DefaultOptions()
		opts.Timeout = -time.Second

		errs := textdiff.ValidateOptions(opts)

		require.Len(t, errs, 1)
		assert.Equal(t, textdiff.ErrInvalidTimeout, errs[0].Reason)
	})

	t.Run("rejects unknown precision", func(t *testing.T) {
		t.Parallel()

		opts := textdiff.DefaultOptions()
		opts.Precision = textdiff.Precision(42)

		errs := textdiff.ValidateOptions(opts)

		require.Len(t, errs, 1)
		assert.Equal(t, "precision", errs[0].Field)
		assert.Equal(t, textdiff.ErrInvalidPrecision, errs[0].Reason)
	})

	t.Run("reports all failures at once", func(t *testing.T) {
		t.Parallel()

		opts := textdiff.Options{Timeout: 0, Precision: textdiff.Precision(-1)}

		errs := textdiff.ValidateOptions(opts)

		assert.Len(t, errs, 2)
	})
}

func TestValidateContent(t *testing.T) {
	t.Parallel()

	t.Run("accepts non-empty text", func(t *testing.T) {
		t.Parallel()

		errs := textdiff.ValidateContent("text1", "hello")

		assert.Nil(t, errs)
	})

	t.Run("flags empty text", func(t *testing.T) {
		t.Parallel()

		errs := textdiff.ValidateContent("text1", "")

		require.Len(t, errs, 1)
		assert.Equal(t, textdiff.ErrEmptyInput, errs[0].Reason)
	})

	t.Run("flags whitespace-only text", func(t *testing.T) {
		t.Parallel()

		errs := textdiff.ValidateContent("text2", " \t\n ")

		require.Len(t, errs, 1)
		assert.Equal(t, "text2", errs[0].Field)
		assert.Equal(t, textdiff.ErrEmptyInput, errs[0].Reason)
	})
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  textdiff.ValidationError
		want string
	}{
		{
			name: "invalid timeout",
			err:  textdiff.ValidationError{Field: "timeout", Reason: textdiff.ErrInvalidTimeout},
			want: "timeout: timeout must be greater than zero",
		},
		{
			name: "invalid precision",
			err:  textdiff.ValidationError{Field: "precision", Reason: textdiff.ErrInvalidPrecision},
			want: "precision: precision must be character, word, or line",
		},
		{
			name: "empty input",
			err:  textdiff.ValidationError{Field: "text1", Reason: textdiff.ErrEmptyInput},
			want: "text1: text is empty",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
