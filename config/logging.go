package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogWriter is shared by the standard logger, gin and gorm.
var LogWriter io.Writer = os.Stdout

// LogFilePath returns the path to the service log file.
func LogFilePath() string {
	if p := os.Getenv("LOG_FILE"); p != "" {
		return p
	}
	return filepath.Join("logs", "directory-api.log")
}

// InitLogging opens the log file and points the standard logger at stdout plus the file.
// When the file cannot be opened logging stays on stdout.
func InitLogging() (*os.File, io.Writer) {
	logDir := filepath.Dir(LogFilePath())
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create logs directory: %v", err)
	}

	logFile, err := os.OpenFile(LogFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("Warning: Failed to open log file: %v", err)
		LogWriter = os.Stdout
		log.SetOutput(LogWriter)
		return nil, LogWriter
	}

	LogWriter = io.MultiWriter(os.Stdout, logFile)
	log.SetOutput(LogWriter)
	return logFile, LogWriter
}
