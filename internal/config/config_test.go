package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestFromEnv(t *testing.T) {
	subtests := []struct {
		name     string
		env      map[string]string
		expected *Config
		error    bool
	}{
		{
			name:     "defaults",
			env:      map[string]string{},
			expected: &Config{Registry: RegistryCLR, Format: FormatText, LogLevel: zapcore.InfoLevel},
		},
		{
			name: "overrides",
			env: map[string]string{
				"TYPE_CATALOG_REGISTRY":          "go",
				"TYPE_CATALOG_FORMAT":            "yaml",
				"TYPE_CATALOG_CORRECTED_BOOLEAN": "true",
				"TYPE_CATALOG_LOG_LEVEL":         "debug",
			},
			expected: &Config{Registry: RegistryGo, Format: FormatYAML, CorrectedBoolean: true, LogLevel: zapcore.DebugLevel},
		},
		{
			name:     "unprefixed variables are ignored",
			env:      map[string]string{"REGISTRY": "go"},
			expected: &Config{Registry: RegistryCLR, Format: FormatText, LogLevel: zapcore.InfoLevel},
		},
		{name: "unknown registry", env: map[string]string{"TYPE_CATALOG_REGISTRY": "jvm"}, error: true},
		{name: "unknown format", env: map[string]string{"TYPE_CATALOG_FORMAT": "xml"}, error: true},
		{name: "bad level", env: map[string]string{"TYPE_CATALOG_LOG_LEVEL": "loud"}, error: true},
		{name: "bad bool", env: map[string]string{"TYPE_CATALOG_CORRECTED_BOOLEAN": "maybe"}, error: true},
	}

	for _, st := range subtests {
		t.Run(st.name, func(t *testing.T) {
			c, err := FromEnv(st.env)
			if st.error {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, st.expected, c)
		})
	}
}

func TestFromEnv_InvalidConfiguration(t *testing.T) {
	_, err := FromEnv(map[string]string{"TYPE_CATALOG_FORMAT": "xml"})
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Contains(t, err.Error(), `"xml"`)
}

func TestConfig_NewLogger(t *testing.T) {
	c := &Config{LogLevel: zapcore.WarnLevel}

	logger, err := c.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
