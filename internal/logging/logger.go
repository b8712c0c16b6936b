package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Logger appends timestamped debug lines to a file. The TUI owns the
// terminal, so nothing is ever written to stdout or stderr.
type Logger struct {
	file *os.File
	std  *log.Logger
}

// New opens path for appending. An empty path returns a disabled logger
// whose methods are no-ops.
func New(path string) (*Logger, error) {
	if strings.TrimSpace(path) == "" {
		return &Logger{}, nil
	}
	std := log.New(io.Discard, "", log.LstdFlags)
	f, err := tea.LogToFileWith(path, "faraway", std)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return &Logger{file: f, std: std}, nil
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Printf writes a single line to the log file.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.std == nil {
		return
	}
	l.std.Println(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}
