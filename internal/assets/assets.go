// Package assets embeds the default workstyle configuration.
//
// The same bytes seed a new user's config.toml and serve as the fallback
// whenever the user file cannot be used. They are written by us, not by
// users, so failing to decode them is a build defect and panics.
package assets

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/five82/workstyle/internal/document"
	"github.com/five82/workstyle/internal/mapping"
)

// OtherSection is the table holding settings that are not icon rules.
const OtherSection = "other"

// FallbackIconKey names the [other] field overriding the fallback icon.
const FallbackIconKey = "fallback_icon"

//go:embed default_config.toml
var defaultConfig []byte

var parsedDefault = sync.OnceValue(func() document.Value {
	v, err := document.Parse(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("embedded default_config.toml is invalid: %v", err))
	}
	return v
})

var defaultMapping = sync.OnceValue(func() mapping.Mapping {
	m, err := mapping.Decode(parsedDefault().Without(OtherSection))
	if err != nil {
		panic(fmt.Sprintf("embedded default_config.toml has invalid icon rules: %v", err))
	}
	return m
})

var defaultFallbackIcon = sync.OnceValue(func() string {
	other, ok := parsedDefault().Lookup(OtherSection)
	if !ok {
		panic("embedded default_config.toml has no [other] section")
	}
	icon, ok := other.Lookup(FallbackIconKey)
	if !ok || icon.Kind != document.KindString {
		panic("embedded default_config.toml has no string [other].fallback_icon")
	}
	return icon.Text
})

// DefaultConfig returns a copy of the embedded configuration file.
func DefaultConfig() []byte {
	out := make([]byte, len(defaultConfig))
	copy(out, defaultConfig)
	return out
}

// DefaultMapping returns the icon rules of the embedded configuration.
func DefaultMapping() mapping.Mapping {
	m := defaultMapping()
	out := make(mapping.Mapping, len(m))
	copy(out, m)
	return out
}

// DefaultFallbackIcon returns [other].fallback_icon of the embedded configuration.
func DefaultFallbackIcon() string {
	return defaultFallbackIcon()
}
