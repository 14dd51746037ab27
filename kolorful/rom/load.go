package rom

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// ErrEmptyArchive is returned for archives that contain no file.
var ErrEmptyArchive = errors.New("archive is empty")

// Boot ROM sizes: DMG and CGB.
const (
	DMGBootSize = 256
	CGBBootSize = 2304
)

// Load reads an image from path. Plain images (.gb, .gbc, .bin and anything
// without a known archive extension) are returned as is; .gz files are
// decompressed and .zip/.7z archives yield their first file.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var out []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gz":
		out, err = gunzip(data)
	case ".zip":
		out, err = unzip(data)
	case ".7z":
		out, err = un7z(data)
	default:
		out = data
	}
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	slog.Debug("image loaded", "path", path, "size", len(out), "xxhash", FingerprintString(out))
	return out, nil
}

// LoadBoot loads a boot ROM and checks it has one of the known sizes.
func LoadBoot(path string) ([]byte, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}
	if len(data) != DMGBootSize && len(data) != CGBBootSize {
		return nil, fmt.Errorf("boot rom %s: unexpected size %d", path, len(data))
	}
	return data, nil
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func unzip(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, ErrEmptyArchive
}

func un7z(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, ErrEmptyArchive
}
