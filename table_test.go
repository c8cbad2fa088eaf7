package quotemark

import (
	"errors"
	"testing"
)

func TestNewTableBuiltins(t *testing.T) {
	table, diags := NewTable(nil)
	if len(diags) != 0 {
		t.Fatalf("NewTable(nil) diagnostics = %v, want none", diags)
	}
	if table.Len() != len(builtinMarks) {
		t.Fatalf("table has %d entries, want %d", table.Len(), len(builtinMarks))
	}

	// Every built-in tag resolves to four non-empty marks.
	for tag := range builtinMarks {
		set, ok := table.Resolve(string(tag))
		if !ok {
			t.Errorf("Resolve(%q) not found", tag)
			continue
		}
		if set.PrimaryLeft == "" || set.PrimaryRight == "" ||
			set.SecondaryLeft == "" || set.SecondaryRight == "" {
			t.Errorf("Resolve(%q) = %+v, has empty marks", tag, set)
		}
	}
}

func TestNewTableOverrides(t *testing.T) {
	override := GlyphSet{"(", ")", "[", "]"}
	table, diags := NewTable(map[string]GlyphSet{
		"xx-YY": override,
		"en":    {">>", "<<", ">", "<"},
	})
	if len(diags) != 0 {
		t.Fatalf("diagnostics = %v, want none", diags)
	}

	// Override beats any prefix-fallback candidate, case-insensitively.
	if set, ok := table.Resolve("XX-yy"); !ok || set != override {
		t.Errorf("Resolve(XX-yy) = %+v, %v; want %+v", set, ok, override)
	}

	// Override replaces the built-in entry under the same normalized key.
	if set, _ := table.Resolve("en"); set.PrimaryLeft != ">>" {
		t.Errorf("Resolve(en) = %+v, want overridden entry", set)
	}

	// The built-in table itself is untouched.
	if builtinMarks["en"].PrimaryLeft != "“" {
		t.Fatalf("builtin table mutated: %+v", builtinMarks["en"])
	}
}

func TestNewTableRejectsBadEntries(t *testing.T) {
	good := GlyphSet{"«", "»", "‹", "›"}
	table, diags := NewTable(map[string]GlyphSet{
		"not a tag": good,               // malformed tag
		"fr-CA":     {PrimaryLeft: "«"}, // incomplete set
		"de-AT":     good,               // fine
	})

	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(diags), diags)
	}
	for _, d := range diags {
		if d.Severity != SeverityError {
			t.Errorf("diagnostic %v severity = %v, want error", d, d.Severity)
		}
		if !errors.Is(d.Err, ErrConfig) {
			t.Errorf("diagnostic %v does not carry a config error", d)
		}
	}

	// The failing entries are dropped, the good one still applies.
	if _, ok := table.Lookup("fr-CA"); ok {
		t.Error("incomplete override was inserted")
	}
	if set, ok := table.Resolve("de-AT"); !ok || set != good {
		t.Errorf("Resolve(de-AT) = %+v, %v; want the good override", set, ok)
	}
}

func TestTableTags(t *testing.T) {
	table, _ := NewTable(map[string]GlyphSet{"xx": {"a", "b", "c", "d"}})
	found := false
	for _, tag := range table.Tags() {
		if tag == "xx" {
			found = true
		}
	}
	if !found {
		t.Error("Tags() does not contain the merged override")
	}
	if len(table.Tags()) != table.Len() {
		t.Errorf("Tags() length %d != Len() %d", len(table.Tags()), table.Len())
	}
}
