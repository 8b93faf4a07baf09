package qasm

import (
	"os"

	"github.com/quantumforge/qasmgen/ir"
	"github.com/quantumforge/qasmgen/logger"
)

// WriteFile generates the program text and writes it to path, creating
// the file or overwriting an existing one.
func WriteFile(c *ir.Circuit, path string) error {
	text := Generate(c)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return err
	}
	log := logger.Logger()
	log.Info().
		Int("nbGates", c.NbGates()).
		Int("nbBytes", len(text)).
		Str("path", path).
		Msg("wrote program")
	return nil
}
