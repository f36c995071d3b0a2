// Package clipboard reads pasted images for the drawing board.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"image"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Reader delivers the image currently on the clipboard.
type Reader interface {
	ReadImage() (image.Image, error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func() (image.Image, error)

func (f ReaderFunc) ReadImage() (image.Image, error) { return f() }

// TextReader adapts a text-only clipboard. The text may hold a
// data:image/...;base64 URI, a file:// URI or a plain path to an image file.
type TextReader struct {
	Content func() string
	// MaxFileSize bounds how much is read from a referenced file. Zero means 32 MiB.
	MaxFileSize int64
}

const defaultMaxFileSize = 32 << 20

func (r TextReader) ReadImage() (image.Image, error) {
	if r.Content == nil {
		return nil, ErrNoImage
	}
	text := strings.TrimSpace(r.Content())
	if text == "" {
		return nil, ErrNoImage
	}

	if strings.HasPrefix(text, "data:") {
		data, err := decodeDataURI(text)
		if err != nil {
			return nil, err
		}
		return Decode(data)
	}

	path, ok := localPath(text)
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	data, err := r.readFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

func (r TextReader) readFile(path string) ([]byte, error) {
	limit := r.MaxFileSize
	if limit <= 0 {
		limit = defaultMaxFileSize
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, ErrUnsupportedFormat
	}
	if info.Size() > limit {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrUnsupportedFormat, filepath.Base(path), info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clipboard file: %w", err)
	}
	return data, nil
}

func decodeDataURI(text string) ([]byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(text, "data:"), ",")
	if !ok || !strings.HasPrefix(meta, "image/") || !strings.HasSuffix(meta, ";base64") {
		return nil, ErrUnsupportedFormat
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return data, nil
}

func localPath(text string) (string, bool) {
	if strings.ContainsAny(text, "\r\n") {
		return "", false
	}
	if strings.HasPrefix(text, "file://") {
		u, err := url.Parse(text)
		if err != nil || u.Path == "" {
			return "", false
		}
		return filepath.FromSlash(u.Path), true
	}
	if filepath.IsAbs(text) {
		return text, true
	}
	return "", false
}
