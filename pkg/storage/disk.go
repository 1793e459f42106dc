// Package storage abstracts where uploaded menu images live.
//
// Two drivers are available:
//   - "local"  — local filesystem (default)
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Boot once at startup with storage.Connect(), then:
//
//	storage.Put("menu/tandoori.jpg", data)
//	url := storage.URL("menu/tandoori.jpg")
package storage

import "io"

// Disk is the filesystem driver interface.
type Disk interface {
	// Put writes content to path, creating parent directories as needed.
	Put(path string, content []byte) error

	// PutStream writes from r to path.
	PutStream(path string, r io.Reader) error

	// Get returns the full content of the file at path.
	Get(path string) ([]byte, error)

	// Exists reports whether a file exists at path.
	Exists(path string) bool

	// Delete removes a file. Returns nil if the file did not exist.
	Delete(path string) error

	// URL returns the public URL for path.
	URL(path string) string
}
