package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// activeRotatingWriter tracks the file writer for cleanup on shutdown
var activeRotatingWriter *DailyRotatingWriter

// SetupLogging configures logging to stdout plus a daily rotating file in
// the logs directory.
func SetupLogging() (*log.Logger, error) {
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %v", err)
	}

	fileWriter, err := NewDailyRotatingWriter(logDir, "contact-list-%s.log")
	if err != nil {
		return nil, fmt.Errorf("failed to create log writer: %v", err)
	}
	activeRotatingWriter = fileWriter

	multiWriter := io.MultiWriter(os.Stdout, fileWriter)
	logger := log.New(multiWriter, "", log.LstdFlags|log.Lshortfile)

	return logger, nil
}

// SetupFallbackLogger creates a simple console logger when file logging fails
func SetupFallbackLogger() *log.Logger {
	fmt.Printf("Failed to set up file logging, using console logging only\n")
	return log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile)
}

// GetWriter returns the writer for the logger
func GetWriter(logger *log.Logger) io.Writer {
	return logger.Writer()
}

// CloseLogger properly closes the log file
func CloseLogger() error {
	if activeRotatingWriter != nil {
		return activeRotatingWriter.Close()
	}
	return nil
}
