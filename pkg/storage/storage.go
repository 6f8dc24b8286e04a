// Package storage stores uploaded files (product images) on a configurable
// disk: the local filesystem or any S3-compatible bucket.
package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/warungku/warung/config"
	"github.com/warungku/warung/pkg/logger"
)

// Disk is the minimal file-store surface the app needs.
type Disk interface {
	Put(path string, content []byte) error
	PutStream(path string, r io.Reader) error
	Get(path string) ([]byte, error)
	Exists(path string) bool
	Delete(path string) error
	URL(path string) string
}

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. Call once at application startup.
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.StorageDisk()
	disks["local"] = newLocalDisk()

	if config.StorageS3Bucket() != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		defaultDisk = "local"
	}
}

// Use returns the named disk ("local" or "s3").
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// Default returns the disk selected by STORAGE_DISK.
func Default() Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()
	return disks[defaultDisk]
}

// Put writes content to path on the default disk.
func Put(path string, content []byte) error { return Default().Put(path, content) }

// PutStream writes from r to path on the default disk.
func PutStream(path string, r io.Reader) error { return Default().PutStream(path, r) }

// URL returns the public URL for path on the default disk.
func URL(path string) string { return Default().URL(path) }

// Delete removes path from the default disk.
func Delete(path string) error { return Default().Delete(path) }
