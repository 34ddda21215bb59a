// Package config loads the settings of the type-catalog command from the
// environment, filling in defaults and validating the result.
package config
