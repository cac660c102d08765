package pipeline

import (
	"fmt"
	"log"
	"mime/multipart"

	"medibuddy/internal/storage"
)

// saveAudio validates and stores an audio upload. The caller must remove the
// returned path.
func (p *Pipeline) saveAudio(file *multipart.FileHeader) (string, error) {
	path, err := p.saveUpload("user_audio", "audio", file)
	if err != nil {
		return "", err
	}
	if err := storage.CheckWAV(path); err != nil {
		log.Printf("[Upload] Rejecting %s: %v", file.Filename, err)
		storage.Remove(path)
		return "", invalid("Invalid WAV file")
	}
	return path, nil
}

// saveImage validates and stores an image upload and returns its MIME type.
func (p *Pipeline) saveImage(file *multipart.FileHeader) (string, string, error) {
	path, err := p.saveUpload("user_image", "image", file)
	if err != nil {
		return "", "", err
	}
	mimeType, err := storage.DetectImage(path)
	if err != nil {
		log.Printf("[Upload] Rejecting %s: %v", file.Filename, err)
		storage.Remove(path)
		return "", "", invalid("Invalid image file")
	}
	return path, mimeType, nil
}

func (p *Pipeline) saveUpload(prefix, kind string, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", invalid(fmt.Sprintf("No %s file provided", kind))
	}
	if file.Filename == "" {
		return "", invalid("No selected file")
	}
	if file.Size < p.limits.MinUploadBytes {
		return "", invalid("File is too small or empty")
	}
	if p.limits.MaxUploadBytes > 0 && file.Size > p.limits.MaxUploadBytes {
		return "", invalid(fmt.Sprintf("File exceeds the %d MB limit", p.limits.MaxUploadBytes>>20))
	}

	path, err := p.store.SaveUpload(prefix, file)
	if err != nil {
		return "", err
	}
	return path, nil
}
