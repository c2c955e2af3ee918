// Package datauri handles the base64 framing used to move image bytes
// inside JSON, including the optional "data:<mime>;base64," prefix.
package datauri

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ToBase64 encodes raw bytes as standard base64, no line wrapping and no
// data-URI prefix. Prefixing is a response-shaping decision left to callers.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromFramed decodes base64 text that may carry a data-URI prefix. When the
// text contains a comma, only the part after the first comma is treated as
// payload; the prefix is discarded without being validated. Without a comma
// the whole string is the payload.
func FromFramed(text string) ([]byte, error) {
	if _, payload, found := strings.Cut(text, ","); found {
		text = payload
	}

	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	return data, nil
}
