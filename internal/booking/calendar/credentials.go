package calendar

import (
	"errors"
	"os"
)

const (
	// DefaultCredentialsFile is the service-account key the service looks for.
	DefaultCredentialsFile = "google-credentials.json"

	// FallbackCredentialsFile is the name the key often ends up with after a
	// download that appends ".json" a second time.
	FallbackCredentialsFile = "google-credentials.json.json"
)

// ResolveCredentialsFile returns the first of primary and fallback that
// exists, or "" when neither does.
func ResolveCredentialsFile(primary, fallback string) string {
	for _, p := range []string{primary, fallback} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		} else if !errors.Is(err, os.ErrNotExist) {
			// Present but unreadable; let the client report it.
			return p
		}
	}
	return ""
}
