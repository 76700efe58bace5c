package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadOverlay merges KEY=VALUE pairs from an optional overlay file into the
// process environment. Variables that are already set keep their value, so
// the real environment always wins over the file. A missing file is a no-op.
//
// The format is deliberately plain: one pair per line, blank lines and
// #-comments ignored, no quoting or escaping. Lines without "=" or with an
// empty key are skipped silently.
func LoadOverlay(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found || key == "" {
			continue
		}

		if _, set := os.LookupEnv(key); !set {
			os.Setenv(key, value)
		}
	}

	return nil
}

// Require returns the value of an environment variable, failing with an
// error naming the variable when it is unset or empty.
func Require(key string) (string, error) {
	value := viper.GetString(key)
	if value == "" {
		return "", fmt.Errorf("missing required environment variable: %s", key)
	}
	return value, nil
}

// Optional returns a pointer to the variable's value, or nil when it is
// unset. An empty value counts as unset.
func Optional(key string) *string {
	value := viper.GetString(key)
	if value == "" {
		return nil
	}
	return &value
}
