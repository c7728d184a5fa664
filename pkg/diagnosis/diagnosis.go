// Package diagnosis simulates crop disease detection from an uploaded leaf
// photo. Every valid image yields the same canned result.
package diagnosis

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"krishisahay/entities"
)

// MaxUploadBytes caps accepted photos.
const MaxUploadBytes = 10 << 20

var (
	ErrEmptyUpload = errors.New("upload is empty")
	ErrNotImage    = errors.New("upload is not an image")
	ErrTooLarge    = errors.New("upload exceeds 10 MiB")
	ErrNotFound    = errors.New("diagnosis not found")
)

// Sniff returns the content type of data. The sniffed type wins when it is an
// image; otherwise the declared part type is trusted if it names an image,
// since formats like HEIC and TIFF are not sniffable.
func Sniff(data []byte, declared string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyUpload
	}
	ct := http.DetectContentType(data)
	if strings.HasPrefix(ct, "image/") {
		return ct, nil
	}
	if mt, _, err := mime.ParseMediaType(declared); err == nil && strings.HasPrefix(mt, "image/") {
		return mt, nil
	}
	return ct, ErrNotImage
}

// Canned is the result every scan reports.
func Canned() entities.Diagnosis {
	return entities.Diagnosis{
		Disease:    "Late Blight (Phytophthora infestans)",
		Confidence: 94.5,
		Severity:   "high",
		Treatment:  "Apply Metalaxyl + Mancozeb @ 2.5g/L immediately. Repeat after 7 days. Remove and destroy severely affected plants.",
		Prevention: "Use resistant varieties. Avoid overhead irrigation. Maintain proper plant spacing for air circulation.",
	}
}
