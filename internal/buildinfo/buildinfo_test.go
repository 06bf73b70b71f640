package buildinfo

import (
	"strings"
	"testing"
)

func TestEmbeddedProjectParses(t *testing.T) {
	info := resolve(projectYAML, "")
	if info.Name() != "gotemplate" {
		t.Fatalf("expected name gotemplate, got %q", info.Name())
	}
	if info.Version() == fallbackVersion {
		t.Fatalf("expected embedded version, got fallback")
	}
}

func TestResolveVersionOverride(t *testing.T) {
	info := resolve(projectYAML, "1.2.3")
	if info.Version() != "1.2.3" {
		t.Fatalf("expected override 1.2.3, got %q", info.Version())
	}
}

func TestResolveFallbacks(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"invalid yaml", "project: [unterminated"},
		{"empty", ""},
		{"blank fields", "project:\n  name: \"  \"\n"},
	}
	for _, c := range cases {
		info := resolve([]byte(c.raw), "")
		if info.Name() != fallbackName || info.Version() != fallbackVersion {
			t.Errorf("%s: expected fallbacks, got %q %q", c.name, info.Name(), info.Version())
		}
	}
}

func TestProjectIsStable(t *testing.T) {
	if Project() != Project() {
		t.Fatalf("expected the same project info on every call")
	}
	if Name() == "" || Version() == "" {
		t.Fatalf("expected non-empty name and version")
	}
	s := String()
	if !strings.HasPrefix(s, Name()+" "+Version()) {
		t.Fatalf("unexpected build string %q", s)
	}
}
