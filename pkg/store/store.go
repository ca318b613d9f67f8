// Package store provides the durable key-value boundary the journal writes
// through, backed by diskv on disk.
package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// JournalKey is the single well-known key the entry collection lives under.
const JournalKey = "journalEntries"

// Adapter is the persistence contract. Read reports ok=false when the key
// has never been written. Write overwrites any prior value.
type Adapter interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}

// Load creates a disk-backed Adapter using the provided config.
func Load(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// Disk persists values as flat files under the configured base path.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

func (p *Disk) Read(key string) ([]byte, bool, error) {
	if !p.d.Has(key) {
		return nil, false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, true, nil
}

func (p *Disk) Write(key string, data []byte) error {
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}
