package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"parkingslots/internal/db"
)

// FileRepository stores the slot list as a single JSON file.
type FileRepository struct {
	Path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{Path: path}
}

func (r *FileRepository) Load(ctx context.Context) ([]db.Slot, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", r.Path, err)
	}
	return DecodeSlots(data)
}

// Save writes to a temporary file next to Path and renames it into place so a
// crash never leaves a half-written list behind.
func (r *FileRepository) Save(ctx context.Context, slots []db.Slot) error {
	data, err := EncodeSlots(slots)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(r.Path), filepath.Base(r.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing slots: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.Path); err != nil {
		return fmt.Errorf("error replacing %s: %w", r.Path, err)
	}
	return nil
}
