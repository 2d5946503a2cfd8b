package dirglob

import (
	"errors"
	"testing"
)

func TestCache(t *testing.T) {
	c, err := NewCache(2, CaseInsensitive(true))
	if err != nil {
		t.Fatalf("NewCache(2) = %v", err)
	}

	p1, err := c.Compile("a/*.GO")
	if err != nil {
		t.Fatalf("Compile(a/*.GO) = %v", err)
	}
	p2, err := c.Compile("a/*.GO")
	if err != nil {
		t.Fatalf("Compile(a/*.GO) again = %v", err)
	}
	if p1 != p2 {
		t.Errorf("Compile(a/*.GO) twice returned different patterns")
	}
	if !p1.Match("A/main.go", false) {
		t.Errorf("cached pattern ignores the cache's parse options")
	}

	if _, err := c.Compile("[oops"); !errors.Is(err, ErrUnterminatedClass) {
		t.Errorf("Compile([oops) = %v, want %v", err, ErrUnterminatedClass)
	}
	if got := c.Len(); got != 1 {
		t.Errorf("Len() after a failed compile = %d, want 1", got)
	}

	c.Compile("b")
	c.Compile("c")
	if got := c.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	p3, _ := c.Compile("a/*.GO")
	if p3 == p1 {
		t.Errorf("Compile(a/*.GO) returned an evicted pattern")
	}
}

func TestNewCache_BadSize(t *testing.T) {
	if _, err := NewCache(0); err == nil {
		t.Errorf("NewCache(0) = nil error, want error")
	}
}
