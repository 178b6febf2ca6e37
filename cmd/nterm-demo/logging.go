package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const (
	logDir      = "logs"
	logFileName = "nterm-demo.log"
	maxLogSize  = 1 << 20
)

// setupLogging routes the standard logger. Debug off discards all log
// output so the render stream stays clean; debug on appends to a
// size-capped file under logDir. Returns the open file (nil when
// disabled) for the caller to close.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate an oversized file aside so the active log stays bounded
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		os.Rename(logPath, logPath+".old")
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
