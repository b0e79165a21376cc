package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const logFileName = "blockfall.log"

// setupLogging points the standard logger at dir/blockfall.log when debug is
// set, and discards log output otherwise: the terminal owns stdout and stderr
// while the game runs. The returned file, if any, must be closed by the caller.
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
