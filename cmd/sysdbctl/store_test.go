package main

import "testing"

func TestStoreCommands(t *testing.T) {
	newTestDB(t)
	storeBackend = "test"
	quiet = false

	t.Run("store host creates", func(t *testing.T) {
		output, err := captureOutput(t, func() error {
			return runStoreHost([]string{"newhost"})
		})
		if err != nil {
			t.Fatalf("runStoreHost() error = %v", err)
		}
		assertContains(t, output, []string{"applied"})

		if _, ok := db.GetHost("newhost"); !ok {
			t.Fatalf("expected newhost to exist after store")
		}
	})

	t.Run("store service requires existing host", func(t *testing.T) {
		_, err := captureOutput(t, func() error {
			return runStoreService([]string{"nosuchhost", "svc"})
		})
		if err == nil {
			t.Fatalf("expected error storing service under missing host")
		}
	})

	t.Run("store metric under host", func(t *testing.T) {
		output, err := captureOutput(t, func() error {
			return runStoreMetric([]string{"web01", "disk.io"})
		})
		if err != nil {
			t.Fatalf("runStoreMetric() error = %v", err)
		}
		assertContains(t, output, []string{"applied"})
	})

	t.Run("store attribute infers integer", func(t *testing.T) {
		output, err := captureOutput(t, func() error {
			return runStoreAttribute([]string{"web01", "port", "8080"})
		})
		if err != nil {
			t.Fatalf("runStoreAttribute() error = %v", err)
		}
		assertContains(t, output, []string{"applied"})

		h, _ := db.GetHost("web01")
		attr, ok := h.GetAttribute("port")
		if !ok {
			t.Fatalf("expected port attribute to exist")
		}
		i, ok := attr.Value().Int()
		if !ok || i != 8080 {
			t.Fatalf("expected port=8080 integer, got %v (ok=%v)", i, ok)
		}
	})

	t.Run("store attribute infers string fallback", func(t *testing.T) {
		_, err := captureOutput(t, func() error {
			return runStoreAttribute([]string{"web01", "label", "not-a-number"})
		})
		if err != nil {
			t.Fatalf("runStoreAttribute() error = %v", err)
		}

		h, _ := db.GetHost("web01")
		attr, ok := h.GetAttribute("label")
		if !ok {
			t.Fatalf("expected label attribute to exist")
		}
		s, ok := attr.Value().Str()
		if !ok || s != "not-a-number" {
			t.Fatalf("expected label=%q string, got %q (ok=%v)", "not-a-number", s, ok)
		}
	})
}
