package filesystem

import "os"

// UserHomeDir returns the current user's home directory, falling back to the
// working directory when it cannot be determined.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
