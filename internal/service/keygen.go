package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewImageKey returns a fresh blob store key: 32 random bytes hex encoded
// (64 characters). A key is chosen once at creation time and reused for every
// subsequent image write, so the public URL never changes after first
// assignment.
func NewImageKey() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate image key: %w", err)
	}
	return hex.EncodeToString(b), nil
}
