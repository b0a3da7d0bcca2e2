// Package prompt handles user prompting (usually for y/n type directives).
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gabrielfortuny/ente-icloud-migration/internal/cfg"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/domain/keys"
	"github.com/gabrielfortuny/ente-icloud-migration/internal/utils/logging"
)

var userInputChan = make(chan string) // Channel for user input

// InitUserInputReader initializes a user input reading function in a goroutine.
func InitUserInputReader() {
	go func() {
		reader := bufio.NewReader(os.Stdin)
		for {
			input, _ := reader.ReadString('\n')
			userInputChan <- strings.TrimSpace(input)
		}
	}()
}

// ConfirmProceed displays a prompt message and waits for a y/n answer.
//
// Returns true immediately when the user passed --yes.
func ConfirmProceed(ctx context.Context, promptMsg string) (bool, error) {

	if cfg.GetBool(keys.AssumeYes) {
		logging.D(3, "Assume yes is set, skipping prompt...")
		return true, nil
	}

	fmt.Println()
	logging.I("%s", promptMsg)

	// Wait for user input
	select {
	case response := <-userInputChan:
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}

	case <-ctx.Done():
		return false, fmt.Errorf("operation canceled during prompt %q", promptMsg)
	}
}
