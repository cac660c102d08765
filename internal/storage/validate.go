package storage

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-audio/wav"
)

var (
	ErrInvalidWAV   = errors.New("invalid WAV file")
	ErrInvalidImage = errors.New("invalid image file")
)

// CheckWAV verifies that path holds a readable RIFF/WAVE container.
func CheckWAV(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return fmt.Errorf("failed to inspect audio: %w", err)
	}
	if !mtype.Is("audio/wav") {
		return fmt.Errorf("%w: detected %s", ErrInvalidWAV, mtype.String())
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open audio: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return ErrInvalidWAV
	}
	return nil
}

// DetectImage returns the MIME type of the image at path.
func DetectImage(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to inspect image: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrInvalidImage, mtype.String())
	}
	return mtype.String(), nil
}

// ContentType sniffs a stored artifact for the download response.
func ContentType(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "application/octet-stream"
	}
	return mtype.String()
}
