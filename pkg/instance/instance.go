package instance

import (
	"os"

	"github.com/angelmondragon/booklibrary/pkg/env"
)

const fallbackID = "local"

// GetID identifies this process in logs and lock owners. It prefers an
// explicit BOOKLIB_INSTANCE_ID, then the platform's dyno name, then the host name.
func GetID() string {
	if id := env.First("", "BOOKLIB_INSTANCE_ID", "DYNO"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return fallbackID
}
