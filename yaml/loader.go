// Package yaml loads kong flag defaults from YAML configuration files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// Loader is a kong.ConfigurationLoader reading a flat YAML mapping.
// Keys match flag names; dashes and underscores are interchangeable, so
// both "user-agent" and "user_agent" set the --user-agent flag.
// An empty file sets nothing.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding YAML config: %w", err)
	}

	normalized := make(map[string]any, len(values))
	for k, v := range values {
		normalized[normalizeKey(k)] = v
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		v, ok := normalized[normalizeKey(flag.Name)]
		if !ok {
			return nil, nil
		}
		return v, nil
	}
	return f, nil
}

func normalizeKey(k string) string {
	return strings.ReplaceAll(strings.ToLower(k), "_", "-")
}
