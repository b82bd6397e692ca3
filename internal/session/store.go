package session

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store persists at most one session record. Load returns nil when there is
// no usable session.
type Store interface {
	Load() (*Record, error)
	Save(rec Record) error
	Clear() error
}

// FileStore keeps the session as a signed token in a single file.
// Tampered, foreign or expired files read as no session.
type FileStore struct {
	path  string
	codec codec
	log   *slog.Logger
}

// NewFileStore creates a FileStore at path signed with secret.
func NewFileStore(path, secret string, log *slog.Logger) *FileStore {
	return &FileStore{
		path:  path,
		codec: newCodec(secret),
		log:   log.With("component", "session_file"),
	}
}

// Path returns the session file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (*Record, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	rec, err := s.codec.decode(strings.TrimSpace(string(b)))
	if err != nil {
		s.log.Warn("session file rejected", slog.String("path", s.path), slog.String("error", err.Error()))
		return nil, nil
	}
	return &rec, nil
}

func (s *FileStore) Save(rec Record) error {
	token, err := s.codec.encode(rec)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// MemoryStore keeps the session in process memory.
type MemoryStore struct {
	mu  sync.Mutex
	rec *Record
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rec == nil {
		return nil, nil
	}
	rec := *s.rec
	return &rec, nil
}

func (s *MemoryStore) Save(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = &rec
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = nil
	return nil
}
