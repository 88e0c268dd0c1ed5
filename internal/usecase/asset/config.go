package asset

import "fmt"

const MaxFileSize = 100 * 1024 * 1024 // 100 MB

var AllowedMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
}

func IsMimeTypeAllowed(mimeType string) bool {
	return AllowedMimeTypes[mimeType]
}

func MimeTypeToExtension(mimeType string) (string, error) {
	switch mimeType {
	case "image/png":
		return ".png", nil
	case "image/jpeg":
		return ".jpg", nil
	case "image/webp":
		return ".webp", nil
	case "video/mp4":
		return ".mp4", nil
	case "video/webm":
		return ".webm", nil
	case "video/ogg":
		return ".ogv", nil
	default:
		return "", fmt.Errorf("no known extension for mime-type %q", mimeType)
	}
}
