package store

import (
	"context"
	"testing"
)

// createTestStore opens a fresh database in a temp dir with the given driver.
func createTestStore(t *testing.T, driver string) *Store {
	t.Helper()
	d := Dialer{Dir: t.TempDir(), Driver: driver}
	s, err := d.Connect(context.Background(), testCredentials())
	if err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testCredentials() Credentials {
	return Credentials{Host: "localhost", User: "root", Database: "tutorial"}
}

var drivers = []string{DriverCGO, DriverPure}
