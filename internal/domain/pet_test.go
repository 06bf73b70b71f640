package domain

import "testing"

func TestNewPet(t *testing.T) {
	p := NewPet("Buddy", 3)
	if p.Name() != "Buddy" {
		t.Fatalf("expected Buddy, got %q", p.Name())
	}
	if p.Age() != 3 {
		t.Fatalf("expected 3, got %d", p.Age())
	}
}

func TestDefaultPet(t *testing.T) {
	p := DefaultPet()
	if p.Name() != "Unknown" {
		t.Fatalf("expected Unknown, got %q", p.Name())
	}
	if p.Age() != 0 {
		t.Fatalf("expected 0, got %d", p.Age())
	}
}
