//go:build !unix

package main

import (
	"fmt"
	"os"
)

// Fallback for non-Unix platforms. Swapping the os.File values does not
// capture runtime-level stderr output (like panics), but it keeps builds
// working.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
