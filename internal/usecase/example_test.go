package usecase

import (
	"bytes"
	"testing"

	"github.com/joaobcpatricio/gotemplate/internal/domain"
)

type fakeInfo struct {
	name    string
	version string
}

func (f fakeInfo) Name() string    { return f.name }
func (f fakeInfo) Version() string { return f.version }

func TestExample_CounterAddOne(t *testing.T) {
	var buf bytes.Buffer
	e := NewExample(fakeInfo{"demo", "1.0.0"}, WithOutput(&buf))

	if err := e.PrintConfigured(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Counter() != 0 {
		t.Fatalf("expected 0, got %d", e.Counter())
	}

	e.CounterAddOne()
	if e.Counter() != 1 {
		t.Fatalf("expected 1, got %d", e.Counter())
	}
}

func TestExample_PrintConfigured(t *testing.T) {
	var buf bytes.Buffer
	e := NewExample(fakeInfo{"demo", "1.0.0"}, WithOutput(&buf))

	if err := e.PrintConfigured(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "demo\n1.0.0\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if e.Counter() != 0 {
		t.Fatalf("expected PrintConfigured not to touch the counter")
	}
}

func TestExample_Reset(t *testing.T) {
	e := NewExample(fakeInfo{}, WithOutput(&bytes.Buffer{}))
	for i := 0; i < 10; i++ {
		e.CounterAddOne()
	}
	e.Reset()
	if e.Counter() != 0 {
		t.Fatalf("expected 0 after reset, got %d", e.Counter())
	}
}

func TestExample_OverflowPolicy(t *testing.T) {
	cases := []struct {
		policy domain.OverflowPolicy
		want   uint8
	}{
		{domain.OverflowSaturate, 255},
		{domain.OverflowWrap, 4},
	}
	for _, c := range cases {
		e := NewExample(fakeInfo{}, WithOverflowPolicy(c.policy))
		for i := 0; i < 260; i++ {
			e.CounterAddOne()
		}
		if e.Counter() != c.want {
			t.Errorf("%s: expected %d, got %d", c.policy, c.want, e.Counter())
		}
		if e.Policy() != c.policy {
			t.Errorf("expected policy %s, got %s", c.policy, e.Policy())
		}
	}
}
