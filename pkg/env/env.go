package env

import "os"

// Get reads an environment variable, treating empty values as unset.
func Get(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}
