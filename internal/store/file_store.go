package store

import (
	"fmt"
	"os"
	"sync"

	"diffimp/internal/domain"
	"diffimp/internal/stackup"
)

// FileStore reads and writes stackup CSV files.
type FileStore struct {
	mu sync.Mutex
}

var _ domain.StackupStore = (*FileStore)(nil)

func NewFileStore() *FileStore { return &FileStore{} }

func (s *FileStore) SaveStackup(path string, st domain.Stackup) error {
	b, err := EncodeCSV(stackup.Rows(st), stackup.TotalThickness(st))
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := writeFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) LoadStackup(path string) (domain.Stackup, error) {
	rows, err := s.ReadRows(path)
	if err != nil {
		return domain.Stackup{}, err
	}
	st, err := stackup.FromRows(rows)
	if err != nil {
		return domain.Stackup{}, fmt.Errorf("load %s: %w", path, err)
	}
	return st, nil
}

func (s *FileStore) ReadRows(path string) ([]domain.StackupRow, error) {
	s.mu.Lock()
	b, err := os.ReadFile(path)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	rows, err := DecodeCSV(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return rows, nil
}
