package quotemark

import "testing"

func TestResolveExact(t *testing.T) {
	table, _ := NewTable(nil)

	tests := []struct {
		name string
		tag  string
		want string // expected primary-left mark
	}{
		{"base language", "de", "„"},
		{"case-insensitive", "DE", "„"},
		{"regional entry", "de-CH", "«"},
		{"regional entry mixed case", "De-cH", "«"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, ok := table.Resolve(tt.tag)
			if !ok {
				t.Fatalf("Resolve(%q) not found", tt.tag)
			}
			if set.PrimaryLeft != tt.want {
				t.Errorf("Resolve(%q).PrimaryLeft = %q, want %q", tt.tag, set.PrimaryLeft, tt.want)
			}
		})
	}
}

func TestResolveRegionalFallback(t *testing.T) {
	table, _ := NewTable(nil)

	// No en-CA entry exists: falls back to the en base entry.
	set, ok := table.Resolve("en-CA")
	if !ok {
		t.Fatal("Resolve(en-CA) not found")
	}
	if want := builtinMarks["en"]; set != want {
		t.Errorf("Resolve(en-CA) = %+v, want the en entry %+v", set, want)
	}

	// With an explicit en-CA entry, exact match beats the base fallback.
	override := GlyphSet{"1", "2", "3", "4"}
	table, _ = NewTable(map[string]GlyphSet{"en-CA": override})
	if set, _ := table.Resolve("en-CA"); set != override {
		t.Errorf("Resolve(en-CA) = %+v, want the explicit entry", set)
	}
	// The base entry is unaffected.
	if set, _ := table.Resolve("en"); set != builtinMarks["en"] {
		t.Errorf("Resolve(en) = %+v, want the builtin en entry", set)
	}
}

func TestResolvePrefixScan(t *testing.T) {
	// Only a regional variant exists: a bare primary-subtag lookup still
	// lands on some variant rather than failing.
	variant := GlyphSet{"<", ">", "<<", ">>"}
	table, _ := NewTable(map[string]GlyphSet{"qa-XX": variant})

	set, ok := table.Resolve("qa")
	if !ok {
		t.Fatal("Resolve(qa) not found, want prefix-scan hit")
	}
	if set != variant {
		t.Errorf("Resolve(qa) = %+v, want %+v", set, variant)
	}

	// Likewise for a lookup with a region that has no exact or base entry.
	set, ok = table.Resolve("qa-ZZ")
	if !ok || set != variant {
		t.Errorf("Resolve(qa-ZZ) = %+v, %v; want the qa-XX variant", set, ok)
	}
}

func TestResolveNotFound(t *testing.T) {
	table, _ := NewTable(nil)
	for _, tag := range []string{"zz", "zz-ZZ", "qqq"} {
		if set, ok := table.Resolve(tag); ok {
			t.Errorf("Resolve(%q) = %+v, want not found", tag, set)
		}
	}
}

func TestResolveDoesNotCrossPrimaries(t *testing.T) {
	// A regional variant of one language must never answer for another.
	table, _ := NewTable(map[string]GlyphSet{"qa-XX": {"a", "b", "c", "d"}})
	if _, ok := table.Resolve("qb"); ok {
		t.Error("Resolve(qb) hit the qa-XX entry")
	}
}
