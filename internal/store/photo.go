package store

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
)

// MaxPhotoSize is the largest accepted upload, in bytes.
const MaxPhotoSize = 10 << 20

const photoKeyPrefix = "profiles"

var photoContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// photoKey validates photo and returns a fresh object key of the form
// profiles/<id><ext> together with the content type to store.
func photoKey(ids utils.IDGenerator, photo models.Photo) (key, contentType string, err error) {
	ext := strings.ToLower(filepath.Ext(photo.Filename))
	contentType, ok := photoContentTypes[ext]
	if !ok {
		return "", "", fmt.Errorf("%w: extension %q is not allowed", ErrUnsupportedPhoto, ext)
	}
	if photo.Size > MaxPhotoSize {
		return "", "", fmt.Errorf("%w: %d bytes exceeds the limit", ErrUnsupportedPhoto, photo.Size)
	}
	if photo.Content == nil {
		return "", "", fmt.Errorf("%w: empty upload", ErrUnsupportedPhoto)
	}

	return path.Join(photoKeyPrefix, ids.Generate()+ext), contentType, nil
}

func publicPhotoURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + key
}

// photoKeyFromURL reverses publicPhotoURL. It reports false for URLs that
// were not issued under base, including the default placeholder.
func photoKeyFromURL(base, url string) (string, bool) {
	key, ok := strings.CutPrefix(url, strings.TrimRight(base, "/")+"/")
	if !ok {
		return "", false
	}
	dir, name := path.Split(key)
	if path.Clean(key) != key || dir != photoKeyPrefix+"/" || name == "" {
		return "", false
	}
	return key, true
}
