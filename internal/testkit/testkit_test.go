package testkit

import (
	"testing"

	"github.com/spf13/afero"
)

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	MustNotPanic(t, func() {})
}

func TestSeedFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	SeedFile(t, fsys, "/a/b/c.env", "K=v\n")

	data, err := afero.ReadFile(fsys, "/a/b/c.env")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "K=v\n" {
		t.Fatalf("contents = %q, want %q", string(data), "K=v\n")
	}
}
