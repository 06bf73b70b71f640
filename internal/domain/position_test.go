package domain

import (
	"bytes"
	"sync"
	"testing"
)

func TestPointSharesPosition(t *testing.T) {
	a := Point{}
	b := Point{}

	a.Set(3, 4)
	if b.X() != 3 || b.Y() != 4 {
		t.Fatalf("expected b to observe 3,4, got %s", b)
	}

	b.SetX(10)
	b.SetY(-2)
	if a.X() != 10 || a.Y() != -2 {
		t.Fatalf("expected a to observe 10,-2, got %s", a)
	}
}

func TestPointPrint(t *testing.T) {
	p := Point{}
	p.Set(7, 8)

	var buf bytes.Buffer
	if err := p.Print(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "7,8\n" {
		t.Fatalf("expected %q, got %q", "7,8\n", buf.String())
	}
}

func TestPointConcurrentSet(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			Point{}.Set(n, n)
			_ = Point{}.String()
		}(i)
	}
	wg.Wait()

	p := Point{}
	if p.X() != p.Y() {
		t.Fatalf("expected coordinates set together, got %s", p)
	}
}
