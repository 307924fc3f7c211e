package utils

import (
	"crypto/rand"
	"fmt"
)

const (
	trackingPrefix   = "AFB"
	trackingLength   = 9
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateTrackingCode returns a public order identifier of the form
// AFB followed by nine random uppercase alphanumerics. Uniqueness
// against existing codes is the order store's job.
func GenerateTrackingCode() (string, error) {
	buf := make([]byte, trackingLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("tracking code entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return trackingPrefix + string(buf), nil
}
