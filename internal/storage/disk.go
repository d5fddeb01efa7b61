package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Disk stores images under a local directory that the server serves
// statically. Stored names carry a millisecond timestamp prefix; collisions
// are avoided only by timestamp granularity.
type Disk struct {
	Dir string
}

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Disk{Dir: dir}, nil
}

func (d *Disk) Save(_ context.Context, name, _ string, data []byte) (string, error) {
	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(name))
	if err := os.WriteFile(filepath.Join(d.Dir, stored), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return stored, nil
}
