package app

import "go.uber.org/zap"

// newLogger builds the debug logger. A TUI owns the terminal, so logs go to
// a file; without a configured path logging is a no-op.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
