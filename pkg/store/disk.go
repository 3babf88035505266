package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/nomilog/pkg/logging"
)

const (
	fileSuffix = ".json"
	tempDir    = ".tmp"
)

// Disk stores each key as one file under a base directory.
type Disk struct {
	// Log receives watcher problems. Nil discards them.
	Log logging.Logger

	d        *diskv.Diskv
	basePath string
}

// NewDisk opens (creating if needed) a disk store rooted at basePath.
func NewDisk(basePath string) (*Disk, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(filepath.Join(basePath, tempDir), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No read cache: other processes write the same files.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

func (s *Disk) log() logging.Logger {
	if s.Log == nil {
		return logging.Nop()
	}
	return s.Log
}

func (s *Disk) Get(_ context.Context, key string) (string, bool, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (s *Disk) Set(_ context.Context, key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *Disk) Remove(_ context.Context, key string) error {
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (s *Disk) Close() error {
	return nil
}

// BasePath is the directory holding the key files.
func (s *Disk) BasePath() string {
	return s.basePath
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key + fileSuffix,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, fileSuffix)
}

// keyForPath maps a file inside the base directory back to its key.
func (s *Disk) keyForPath(path string) string {
	rel, err := filepath.Rel(s.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	if strings.HasPrefix(rel, tempDir) || strings.Contains(rel, string(os.PathSeparator)) {
		return ""
	}
	if !strings.HasSuffix(rel, fileSuffix) {
		return ""
	}
	return strings.TrimSuffix(rel, fileSuffix)
}
