package storage

import (
	"bytes"
	"encoding/binary"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func testWAV(pcmBytes int) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+pcmBytes))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint32(16000))
	_ = binary.Write(buf, binary.LittleEndian, uint32(32000))
	_ = binary.Write(buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(pcmBytes))
	buf.Write(make([]byte, pcmBytes))
	return buf.Bytes()
}

func fileHeader(t *testing.T, field, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile(field, name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File[field][0]
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	root := t.TempDir()
	s, err := NewStore(filepath.Join(root, "uploads"), filepath.Join(root, "out"))
	require.NoError(t, err)
	return s
}

func TestSaveUploadAndRemove(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	data := testWAV(2000)

	path, err := s.SaveUpload("user_audio", fileHeader(t, "audio", "../../my voice.wav", data))
	require.NoError(t, err)
	require.Equal(t, s.uploadDir, filepath.Dir(path))
	require.True(t, strings.HasPrefix(filepath.Base(path), "user_audio_"))
	require.True(t, strings.HasSuffix(path, "_my_voice.wav"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, data, got)

	Remove(path)
	require.NoFileExists(t, path)
	Remove(path)
	Remove("")
}

func TestUniqueNameDoesNotCollide(t *testing.T) {
	t.Parallel()

	const n = 64
	names := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			names <- UniqueName("doctor", "response.mp3")
		}()
	}
	wg.Wait()
	close(names)

	seen := map[string]bool{}
	for name := range names {
		require.False(t, seen[name], name)
		seen[name] = true
	}
	require.Len(t, seen, n)
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "passwd", sanitize("../../etc/passwd"))
	require.Equal(t, "a_b.wav", sanitize(`C:\temp\a b.wav`))
	require.Equal(t, "file", sanitize(""))
	require.Equal(t, "file", sanitize(".."))
	require.Len(t, sanitize(strings.Repeat("x", 100)+".wav"), 64)
}

func TestResolveOutput(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	path := s.NewOutputPath("therapist", ".mp3")
	require.NoError(t, os.WriteFile(path, []byte("ID3"), 0o644))

	got, err := s.ResolveOutput(filepath.Base(path))
	require.NoError(t, err)
	require.Equal(t, path, got)

	_, err = s.ResolveOutput("missing.mp3")
	require.ErrorIs(t, err, ErrNotFound)

	for _, name := range []string{"../uploads/x.wav", "..", ".", "a/b.mp3"} {
		_, err = s.ResolveOutput(name)
		require.ErrorIs(t, err, ErrInvalidName, name)
	}
}
