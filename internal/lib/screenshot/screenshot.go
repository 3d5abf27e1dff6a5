// Package screenshot checks an uploaded payment proof. The file is read only
// far enough to sniff its type and is never stored.
package screenshot

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	FieldName = "screenshot"

	// multipart framing allowance on top of the file limit
	formOverhead = 1 << 20
)

var (
	ErrMissing  = errors.New("screenshot is missing")
	ErrTooLarge = errors.New("screenshot is too large")
	ErrNotImage = errors.New("screenshot is not an image")
)

type File struct {
	Name string `json:"file_name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
}

// FromRequest reads the screenshot form field of a multipart request.
func FromRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (*File, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+formOverhead)

	if err := r.ParseMultipartForm(formOverhead); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, ErrTooLarge
		}
		return nil, fmt.Errorf("failed to parse multipart form: %w", err)
	}

	f, header, err := r.FormFile(FieldName)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, ErrMissing
		}
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}
	defer f.Close()

	return Check(f, header, maxBytes)
}

func Check(f multipart.File, header *multipart.FileHeader, maxBytes int64) (*File, error) {
	if header.Size > maxBytes {
		return nil, ErrTooLarge
	}

	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to detect file type: %w", err)
	}

	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, ErrNotImage
	}

	return &File{
		Name: header.Filename,
		Size: header.Size,
		MIME: mt.String(),
	}, nil
}

// Message is the inline text shown for a rejected screenshot.
func Message(err error, maxBytes int64) string {
	switch {
	case errors.Is(err, ErrTooLarge):
		return fmt.Sprintf("File size should be less than %dMB", maxBytes>>20)
	case errors.Is(err, ErrNotImage):
		return "Only image files are accepted"
	case errors.Is(err, ErrMissing):
		return "Please upload payment screenshot"
	default:
		return "failed to read screenshot"
	}
}
