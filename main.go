// gorc encrypts and decrypts files in place with RC4 or ChaCha20-Poly1305.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/gorc/internal/commands"
	"github.com/idelchi/gorc/internal/config"
)

// version is set at build time.
var version = "dev" //nolint:gochecknoglobals

func main() {
	cfg := &config.Config{}

	if err := commands.NewRootCommand(cfg, version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
