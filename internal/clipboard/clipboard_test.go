package clipboard

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func writeTempImage(t *testing.T, w, h int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pasted.png")
	require.NoError(t, os.WriteFile(path, pngBytes(t, w, h), 0o600))
	return path
}

func text(s string) func() string { return func() string { return s } }

func TestDecode(t *testing.T) {
	img, err := Decode(pngBytes(t, 7, 3))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 7, 3), img.Bounds())

	_, err = Decode(nil)
	assert.ErrorIs(t, err, ErrNoImage)

	_, err = Decode([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	truncated := pngBytes(t, 4, 4)[:20]
	_, err = Decode(truncated)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTextReaderDataURI(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t, 5, 2))

	img, err := TextReader{Content: text(uri)}.ReadImage()
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	_, err = TextReader{Content: text("data:text/plain;base64,aGk=")}.ReadImage()
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = TextReader{Content: text("data:image/png;base64,!!!")}.ReadImage()
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestTextReaderFile(t *testing.T) {
	path := writeTempImage(t, 9, 6)

	tests := []struct {
		name string
		text string
	}{
		{"absolute path", path},
		{"file uri", "file://" + filepath.ToSlash(path)},
		{"surrounding whitespace", "  " + path + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := TextReader{Content: text(tt.text)}.ReadImage()
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 9, 6), img.Bounds())
		})
	}
}

func TestTextReaderRejects(t *testing.T) {
	big := writeTempImage(t, 64, 64)

	tests := []struct {
		name   string
		reader TextReader
		want   error
	}{
		{"no content func", TextReader{}, ErrNoImage},
		{"empty text", TextReader{Content: text("   ")}, ErrNoImage},
		{"plain text", TextReader{Content: text("hello board")}, ErrUnsupportedFormat},
		{"relative path", TextReader{Content: text("pics/cat.png")}, ErrUnsupportedFormat},
		{"missing file", TextReader{Content: text(filepath.Join(t.TempDir(), "gone.png"))}, ErrUnsupportedFormat},
		{"directory", TextReader{Content: text(t.TempDir())}, ErrUnsupportedFormat},
		{"too large", TextReader{Content: text(big), MaxFileSize: 16}, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := tt.reader.ReadImage()
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, img)
		})
	}
}

func TestReaderFunc(t *testing.T) {
	want := image.NewRGBA(image.Rect(0, 0, 1, 1))
	var r Reader = ReaderFunc(func() (image.Image, error) { return want, nil })

	got, err := r.ReadImage()
	require.NoError(t, err)
	assert.Same(t, want, got)
}
