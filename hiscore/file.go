//go:build !tinygo

package hiscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

type record struct {
	HighScore uint32 `json:"high_score"`
}

// File stores the score as JSON at Path. A missing file reads as 0.
type File struct {
	Path string
	mu   sync.Mutex
}

// NewFile returns a store backed by path
func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Load() (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("parse high score %s: %w", f.Path, err)
	}
	return r.HighScore, nil
}

// Save writes the score through a temporary file so a crash never
// leaves a truncated record
func (f *File) Save(score uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(record{HighScore: score})
	if err != nil {
		return err
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}
