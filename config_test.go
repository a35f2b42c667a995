package telemetry

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TELEMETRY_PRODUCT", "extension")
	t.Setenv("TELEMETRY_SENTRY_DSN", "https://key@sentry.example.com/1")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "extension", cfg.Product)
	assert.Equal(t, "https://key@sentry.example.com/1", cfg.DSN)
}

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore, the unset makes the
	// variable truly absent so the default kicks in
	t.Setenv("TELEMETRY_PRODUCT", "")
	os.Unsetenv("TELEMETRY_PRODUCT")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "core", cfg.Product)
}

func TestNumericVersion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		version string
		want    int
	}{
		{version: "0.27.3", want: 27003},
		{version: "1.2.3", want: 1002003},
		{version: "1.2.3-beta.1", want: 1002000},
		{version: "10", want: 10000000},
		{version: "", want: 0},
		{version: "banana", want: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.version, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, numericVersion(tc.version))
		})
	}
}
