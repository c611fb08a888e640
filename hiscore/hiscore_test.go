package hiscore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVolatile(t *testing.T) {
	var v Volatile
	if s, _ := v.Load(); s != 0 {
		t.Errorf("Expected 0, got %d", s)
	}
	v.Save(1234)
	if s, _ := v.Load(); s != 1234 {
		t.Errorf("Expected 1234, got %d", s)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiscore.json")
	f := NewFile(path)

	s, err := f.Load()
	if err != nil || s != 0 {
		t.Fatalf("Expected 0 from a missing file, got %d (%v)", s, err)
	}

	if err := f.Save(4570); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	s, err = NewFile(path).Load()
	if err != nil || s != 4570 {
		t.Errorf("Expected 4570, got %d (%v)", s, err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("Expected temporary file to be gone")
	}
}

func TestFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hiscore.json")
	os.WriteFile(path, []byte("{not json"), 0o644)

	if _, err := NewFile(path).Load(); err == nil {
		t.Error("Expected a parse error")
	}
}
