package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestCheckWAV(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckWAV(writeTemp(t, "ok.wav", testWAV(2000))))

	err := CheckWAV(writeTemp(t, "text.wav", bytes2k('a')))
	require.ErrorIs(t, err, ErrInvalidWAV)

	// RIFF/WAVE magic but no usable fmt chunk.
	broken := append([]byte("RIFF\x00\x10\x00\x00WAVE"), bytes2k(0)...)
	err = CheckWAV(writeTemp(t, "broken.wav", broken))
	require.ErrorIs(t, err, ErrInvalidWAV)
}

func TestDetectImage(t *testing.T) {
	t.Parallel()

	jpeg := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, bytes2k(0)...)
	mime, err := DetectImage(writeTemp(t, "face.jpg", jpeg))
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime)

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes2k(0)...)
	mime, err = DetectImage(writeTemp(t, "face.png", png))
	require.NoError(t, err)
	require.Equal(t, "image/png", mime)

	_, err = DetectImage(writeTemp(t, "face.jpg", testWAV(2000)))
	require.ErrorIs(t, err, ErrInvalidImage)
}

func TestContentType(t *testing.T) {
	t.Parallel()

	require.Equal(t, "audio/wav", ContentType(writeTemp(t, "a.wav", testWAV(100))))
	require.Equal(t, "application/octet-stream", ContentType(filepath.Join(t.TempDir(), "missing")))
}

func bytes2k(b byte) []byte {
	out := make([]byte, 2048)
	for i := range out {
		out[i] = b
	}
	return out
}
