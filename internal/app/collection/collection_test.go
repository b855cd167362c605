package collection

import (
	"strings"
	"testing"
)

type rec struct {
	id    string
	label string
	order int
}

func (r rec) Key() string { return r.id }

func (r rec) WithOrder(order int) rec {
	r.order = order
	return r
}

func recs(ids ...string) []rec {
	out := make([]rec, len(ids))
	for i, id := range ids {
		out[i] = rec{id: id, label: strings.ToUpper(id), order: i}
	}
	return out
}

func assertDense(t *testing.T, items []rec) {
	t.Helper()
	for i, item := range items {
		if item.order != i {
			t.Errorf("items[%d].order = %d, want %d", i, item.order, i)
		}
	}
}

func ids(items []rec) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.id
	}
	return strings.Join(parts, ",")
}

func TestAppend(t *testing.T) {
	items := recs("a", "b")
	out := Append(items, rec{id: "c", order: 99})

	if got := ids(out); got != "a,b,c" {
		t.Fatalf("ids = %q, want %q", got, "a,b,c")
	}
	assertDense(t, out)
	if len(items) != 2 {
		t.Errorf("input length changed to %d", len(items))
	}
}

func TestAppendToEmpty(t *testing.T) {
	out := Append(nil, rec{id: "a"})
	if len(out) != 1 || out[0].order != 0 {
		t.Fatalf("Append(nil) = %+v, want one element with order 0", out)
	}
}

func TestUpdate(t *testing.T) {
	items := recs("a", "b", "c")
	out := Update(items, "b", func(r rec) rec {
		r.label = "patched"
		// A patch that tampers with the order field must not move the record
		r.order = 42
		return r
	})

	if got := ids(out); got != "a,b,c" {
		t.Fatalf("ids = %q, want %q", got, "a,b,c")
	}
	if out[1].label != "patched" {
		t.Errorf("out[1].label = %q, want %q", out[1].label, "patched")
	}
	assertDense(t, out)

	if items[1].label != "B" {
		t.Errorf("input record mutated: %+v", items[1])
	}
}

func TestUpdateStaleID(t *testing.T) {
	items := recs("a", "b")
	out := Update(items, "gone", func(r rec) rec {
		t.Fatal("patch called for missing id")
		return r
	})
	if got := ids(out); got != "a,b" {
		t.Fatalf("ids = %q, want unchanged %q", got, "a,b")
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "first", id: "a", want: "b,c,d"},
		{name: "middle", id: "b", want: "a,c,d"},
		{name: "last", id: "d", want: "a,b,c"},
		{name: "missing is no-op", id: "x", want: "a,b,c,d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := recs("a", "b", "c", "d")
			out := Remove(items, tt.id)
			if got := ids(out); got != tt.want {
				t.Fatalf("ids = %q, want %q", got, tt.want)
			}
			assertDense(t, out)
			if got := ids(items); got != "a,b,c,d" {
				t.Errorf("input mutated: %q", got)
			}
		})
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		from int
		to   int
		want string
	}{
		{name: "forward", from: 0, to: 2, want: "b,c,a,d"},
		{name: "backward", from: 3, to: 1, want: "a,d,b,c"},
		{name: "adjacent", from: 1, to: 2, want: "a,c,b,d"},
		{name: "same position", from: 2, to: 2, want: "a,b,c,d"},
		{name: "to front", from: 2, to: 0, want: "c,a,b,d"},
		{name: "to back", from: 0, to: 3, want: "b,c,d,a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := recs("a", "b", "c", "d")
			out := Move(items, tt.from, tt.to)
			if got := ids(out); got != tt.want {
				t.Fatalf("Move(%d, %d) ids = %q, want %q", tt.from, tt.to, got, tt.want)
			}
			assertDense(t, out)
			if got := ids(items); got != "a,b,c,d" {
				t.Errorf("input mutated: %q", got)
			}
		})
	}
}

func TestRenumber(t *testing.T) {
	items := []rec{
		{id: "a", order: 7},
		{id: "b", order: 0},
		{id: "c", order: 3},
	}
	out := Renumber(items)
	if got := ids(out); got != "a,b,c" {
		t.Fatalf("ids = %q, want %q", got, "a,b,c")
	}
	assertDense(t, out)
	if items[0].order != 7 {
		t.Errorf("input mutated: %+v", items[0])
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewID returned duplicate %q", id)
		}
		seen[id] = true
	}
}
