package pkg

import "os"

// Getenv returns the value of the environment variable key, falling back to
// defaultValue only when the variable is unset. An empty value counts as
// set.
func Getenv(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}
