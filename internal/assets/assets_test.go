package assets

import (
	"bytes"
	"slices"
	"testing"
)

func TestDefaultMapping_StartsWithKnownRules(t *testing.T) {
	m := DefaultMapping()
	if len(m) < 2 {
		t.Fatalf("DefaultMapping has %d rules, want at least 2", len(m))
	}
	if m[0].Key != "firefox" || m[0].Value != "🌍" {
		t.Fatalf("rule 0 = %v, want (firefox, 🌍)", m[0])
	}
	if m[1].Key != "code" || m[1].Value != "💻" {
		t.Fatalf("rule 1 = %v, want (code, 💻)", m[1])
	}
	if slices.Contains(m.Keys(), OtherSection) {
		t.Fatalf("DefaultMapping should not contain the [%s] section", OtherSection)
	}
}

func TestDefaultMapping_ReturnsCopy(t *testing.T) {
	m := DefaultMapping()
	m[0].Value = "changed"
	if got := DefaultMapping()[0].Value; got != "🌍" {
		t.Fatalf("DefaultMapping()[0].Value = %q after caller mutation, want %q", got, "🌍")
	}
}

func TestDefaultFallbackIcon(t *testing.T) {
	if got := DefaultFallbackIcon(); got != " " {
		t.Fatalf("DefaultFallbackIcon = %q, want %q", got, " ")
	}
}

func TestDefaultConfig_ReturnsCopy(t *testing.T) {
	a := DefaultConfig()
	if !bytes.Equal(a, defaultConfig) {
		t.Fatalf("DefaultConfig differs from the embedded bytes")
	}
	a[0] = 'X'
	if DefaultConfig()[0] == 'X' {
		t.Fatalf("DefaultConfig exposes the embedded slice")
	}
}
