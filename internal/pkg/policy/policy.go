package policy

import "strings"

// MaxUploadBytes caps the total request body size. Requests over the limit
// are rejected by the transport layer before any parsing happens.
const MaxUploadBytes = 16 << 20 // 16MB max

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"bmp":  true,
}

// IsAllowed reports whether the filename carries a whitelisted extension.
// The check is purely name-based: the substring after the last dot,
// lowercased, must be in the whitelist. No dot means no extension.
func IsAllowed(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}
