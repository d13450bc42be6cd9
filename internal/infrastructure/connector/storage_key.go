package connector

import (
	"fmt"
	"path"
	"strings"

	"github.com/Justyn-98/Video-upload-web-service/internal/domain"
)

// storageKey derives "<videoID>/<file name>" with any directory part of fileName removed
func storageKey(videoID, fileName string) (string, error) {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if videoID == "" || name == "" || name == "." || name == "/" || name == ".." {
		return "", fmt.Errorf("invalid file name %q: %w", fileName, domain.ErrInvalidInput)
	}
	return videoID + "/" + name, nil
}

// validateKey rejects keys escaping the storage root
func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "..") {
		return fmt.Errorf("invalid storage key %q: %w", key, domain.ErrInvalidInput)
	}
	return nil
}
