// Package storage defines the corpus file-system abstraction. Statute
// source texts live as plain .txt files in a single corpus directory, one
// file per book.
package storage

import "time"

// FileInfo is lightweight metadata for one corpus source file.
type FileInfo struct {
	Name      string
	Checksum  string
	UpdatedAt time.Time
}

// Provider is the interface for corpus file operations.
type Provider interface {
	// List returns metadata for every .txt file in the corpus directory.
	List() ([]FileInfo, error)
	// Read returns the raw bytes of the named corpus file.
	Read(name string) ([]byte, error)
	// Write atomically writes content to the named corpus file.
	Write(name string, content []byte) error
	// Delete removes the named corpus file.
	Delete(name string) error
}
