package domain

import (
	"fmt"
	"math"
	"strings"
)

// CounterMax is the largest value a Counter can hold.
const CounterMax = math.MaxUint8

// OverflowPolicy decides what Increment does on a counter already at CounterMax.
type OverflowPolicy string

const (
	// OverflowSaturate keeps the counter at CounterMax.
	OverflowSaturate OverflowPolicy = "saturate"
	// OverflowWrap rolls the counter back to zero.
	OverflowWrap OverflowPolicy = "wrap"
)

// ParseOverflowPolicy accepts "saturate" or "wrap" in any case.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	p := OverflowPolicy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case OverflowSaturate, OverflowWrap:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported overflow policy %q: %w", s, ErrInvalidConfig)
	}
}

// Counter is a one-byte counter. The zero value is a saturating counter at 0.
type Counter struct {
	value  uint8
	policy OverflowPolicy
}

func NewCounter() *Counter {
	return &Counter{policy: OverflowSaturate}
}

// NewCounterWithPolicy returns a counter using p, or OverflowSaturate if p is unknown.
func NewCounterWithPolicy(p OverflowPolicy) *Counter {
	if p != OverflowWrap {
		p = OverflowSaturate
	}
	return &Counter{policy: p}
}

// Increment adds one to the counter, honouring the overflow policy at CounterMax.
func (c *Counter) Increment() {
	if c.value == CounterMax && c.Policy() == OverflowSaturate {
		return
	}
	c.value++
}

func (c *Counter) Value() uint8 {
	return c.value
}

func (c *Counter) Reset() {
	c.value = 0
}

func (c *Counter) Policy() OverflowPolicy {
	if c.policy == "" {
		return OverflowSaturate
	}
	return c.policy
}

// AtMax reports whether the counter holds CounterMax.
func (c *Counter) AtMax() bool {
	return c.value == CounterMax
}
