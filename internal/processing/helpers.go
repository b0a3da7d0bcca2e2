package processing

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/cfg"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/consts"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"

	"github.com/shirou/gopsutil/disk"
)

// checkFreeSpace verifies the output volume holds at least the user's
// minimum free space before any copies begin.
func checkFreeSpace(outputDir string) error {
	if !cfg.IsSet(keys.MinFreeSpaceBytes) {
		return nil
	}
	required := cfg.GetUint64(keys.MinFreeSpaceBytes)
	if required == 0 {
		return nil
	}

	// Walk up to an existing path, the output dir may not exist yet
	probe := filepath.Clean(outputDir)
	for {
		if _, err := os.Stat(probe); err == nil {
			break
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			break
		}
		probe = parent
	}

	usage, err := disk.Usage(probe)
	if err != nil {
		return fmt.Errorf("failed to check free space on %q: %w", probe, err)
	}

	if usage.Free < required {
		return fmt.Errorf("output volume has %d MB free, below the required %d MB",
			usage.Free/consts.MB, required/consts.MB)
	}

	logging.D(1, "Output volume free space: %d MB (required: %d MB)",
		usage.Free/consts.MB, required/consts.MB)
	return nil
}
