// Package exiftool builds and executes exiftool commands and scrapes their output.
package exiftool

import (
	"fmt"
	"os/exec"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/cfg"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
)

// Binary returns the exiftool binary to invoke.
func Binary() string {
	if cfg.IsSet(keys.ExiftoolPath) {
		if bin := cfg.GetString(keys.ExiftoolPath); bin != "" {
			return bin
		}
	}
	return "exiftool"
}

// Verify checks that the exiftool binary is reachable.
func Verify() error {
	bin := Binary()
	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("%q not found in PATH, install it first (e.g. 'brew install exiftool' or 'apt install libimage-exiftool-perl'): %w", bin, err)
	}
	return nil
}
