package catalog

import (
	"reflect"
	"testing"
)

func TestOptionsOrderAndOverride(t *testing.T) {
	o := NewOptions()
	o.Set("a", "1")
	o.Set("b", "2")
	o.Set("c", "3")
	// overwriting keeps the original position
	o.Set("a", "9")

	if got := o.Keys(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected key order: %v", got)
	}
	if v, _ := o.Get("a"); v != "9" {
		t.Errorf("expected last write to win, got %q", v)
	}
}

func TestOptionsClear(t *testing.T) {
	o := NewOptions()
	o.Set("a", "1")
	o.Set("b", "2")
	o.Clear()

	if o.Len() != 0 {
		t.Fatalf("expected empty set after Clear, got %d entries", o.Len())
	}
	if _, ok := o.Get("a"); ok {
		t.Error("expected a to be gone after Clear")
	}
	// the set stays usable
	o.Set("c", "3")
	if v, _ := o.Get("c"); v != "3" {
		t.Errorf("expected c=3 after reuse, got %q", v)
	}
}

func TestOptionsDelete(t *testing.T) {
	o := NewOptions()
	o.Set("a", "1")
	o.Set("b", "2")
	o.Set("c", "3")
	o.Delete("b")

	if got := o.Keys(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("unexpected key order after delete: %v", got)
	}
	o.Delete("missing") // no-op
	if o.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", o.Len())
	}
}

func TestOptionsEach(t *testing.T) {
	o := NewOptions()
	o.Set("x", "1")
	o.Set("y", "2")

	var seen []string
	o.Each(func(name, value string) {
		seen = append(seen, name+"="+value)
	})
	if !reflect.DeepEqual(seen, []string{"x=1", "y=2"}) {
		t.Fatalf("unexpected iteration: %v", seen)
	}
}
