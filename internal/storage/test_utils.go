package storage

import (
	"testing"
)

// testStores returns a fresh instance of every Storage implementation, keyed
// by name, so conformance tests run against both backends.
func testStores(t *testing.T) map[string]Storage {
	t.Helper()

	sqlite, err := NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		sqlite.Close()
	})

	return map[string]Storage{
		"sqlite": sqlite,
		"memory": NewMemory(),
	}
}
