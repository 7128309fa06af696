// Package loader reads a raw binary blob off disk for tracing, optionally
// decompressing it first. The core CPU package has no notion of files or
// archives; this package exists only to get bytes onto a bus.RAM for
// cmd/sm83trace.
package loader

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// Load reads filename and decompresses it if its extension indicates a
// supported archive format (.gz, .zip, .7z). Any other extension, or no
// extension at all, is returned as raw bytes.
func Load(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(filename) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("loader: gzip: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)

	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("loader: zip: %w", err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("loader: zip archive %s is empty", filename)
		}
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("loader: zip: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)

	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("loader: 7z: %w", err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("loader: 7z archive %s is empty", filename)
		}
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("loader: 7z: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)

	default:
		return data, nil
	}
}
