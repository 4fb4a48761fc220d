package omap

import (
	"testing"
)

func TestMap_InsertOrGet_IsCaseInsensitive(t *testing.T) {
	m := New[int]()
	m.InsertOrGet("Foo", func() int { return 1 })

	v, created := m.InsertOrGet("FOO", func() int { return 2 })
	if created {
		t.Fatalf("expected existing entry to be returned, not created")
	}
	if v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
}

func TestMap_Lookup_CaseInsensitive(t *testing.T) {
	m := New[string]()
	m.InsertOrGet("Host01", func() string { return "x" })

	tests := []string{"Host01", "HOST01", "host01", "hOsT01"}
	for _, name := range tests {
		if _, ok := m.Lookup(name); !ok {
			t.Errorf("Lookup(%q): expected hit", name)
		}
	}
	if _, ok := m.Lookup("host02"); ok {
		t.Errorf("Lookup(%q): expected miss", "host02")
	}
}

func TestMap_All_SortedByFoldedKey(t *testing.T) {
	m := New[int]()
	for i, name := range []string{"charlie", "Alpha", "bravo"} {
		m.InsertOrGet(name, func() int { return i })
	}

	got := m.All()
	want := []string{"Alpha", "bravo", "charlie"}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Name != want[i] {
			t.Errorf("entry %d: got name %q, want %q", i, e.Name, want[i])
		}
	}
}

func TestMap_All_PreservesOriginalCase(t *testing.T) {
	m := New[int]()
	m.InsertOrGet("MixedCase", func() int { return 1 })

	all := m.All()
	if all[0].Name != "MixedCase" {
		t.Errorf("got %q, want %q", all[0].Name, "MixedCase")
	}
}

func TestMap_Set_ReplacesExistingInPlace(t *testing.T) {
	m := New[int]()
	m.InsertOrGet("key", func() int { return 1 })
	m.Set("KEY", 2)

	if v, _ := m.Lookup("key"); v != 2 {
		t.Errorf("got %d, want 2", v)
	}
	if m.Len() != 1 {
		t.Errorf("got len %d, want 1", m.Len())
	}
}

func TestMap_Set_InsertsWhenAbsent(t *testing.T) {
	m := New[int]()
	m.Set("new", 5)

	if v, ok := m.Lookup("new"); !ok || v != 5 {
		t.Errorf("got (%d, %v), want (5, true)", v, ok)
	}
}

func TestMap_InsertOrGet_MaintainsSortOnRepeatedInserts(t *testing.T) {
	m := New[int]()
	names := []string{"zeta", "delta", "alpha", "mu", "beta"}
	for i, n := range names {
		m.InsertOrGet(n, func() int { return i })
	}

	all := m.All()
	for i := 1; i < len(all); i++ {
		if fold(all[i-1].Name) > fold(all[i].Name) {
			t.Fatalf("entries not sorted: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
}

func TestMap_Len_Empty(t *testing.T) {
	m := New[int]()
	if m.Len() != 0 {
		t.Errorf("got %d, want 0", m.Len())
	}
}
