package config

import (
	"fmt"

	"github.com/five82/workstyle/internal/assets"
	"github.com/five82/workstyle/internal/document"
)

// FallbackIcon returns [other].fallback_icon from the config file. A missing
// section or field, or a file that cannot be read or parsed, yields the
// default icon. The value is used verbatim, so " " is a valid override.
func (r Resolver) FallbackIcon(loc Location) string {
	icon, err := loadFallbackIcon(loc)
	if err != nil {
		r.fallback(loc, "fallback icon", err)
		return assets.DefaultFallbackIcon()
	}
	return icon
}

func loadFallbackIcon(loc Location) (string, error) {
	data, err := readConfig(loc)
	if err != nil {
		return "", err
	}
	doc, err := document.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse config: %w", err)
	}

	// A root-level "other" that is not a table is an icon rule, not the
	// settings section.
	other, ok := doc.Lookup(assets.OtherSection)
	if !ok || !other.IsTable() {
		return assets.DefaultFallbackIcon(), nil
	}
	icon, ok := other.Lookup(assets.FallbackIconKey)
	if !ok {
		return assets.DefaultFallbackIcon(), nil
	}
	if icon.Kind != document.KindString {
		return "", fmt.Errorf("%s.%s: expected a string, found %s", assets.OtherSection, assets.FallbackIconKey, icon.Kind)
	}
	return icon.Text, nil
}
