// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/x509-chain-segmenter/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
//
// The segmenter itself never logs. Callers use a Logger to report progress
// and to warn about certificates that were left out of a chain.
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message.
	Println(v ...any)
	// Warnf formats and prints a warning.
	Warnf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// Output goes to stderr so that certificate data written to stdout stays clean.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// Warnf prints a message prefixed with "warning: ".
func (c *CLILogger) Warnf(format string, v ...any) { c.logger.Printf("warning: "+format, v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// MCPLogger implements Logger for [MCP] server mode.
// It suppresses output by default since MCP communication happens over stdio,
// but can be configured to write JSON lines to a separate destination.
//
// Each line has the shape {"level":"info","message":"..."}. Lines are
// assembled in buffers taken from [gc.Default].
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewMCPLogger creates a new [MCP] logger.
// With silent set, every call is a no-op. A nil writer discards output.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &MCPLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf logs a formatted informational message.
func (m *MCPLogger) Printf(format string, v ...any) {
	if m.silent {
		return
	}
	m.write("info", fmt.Sprintf(format, v...))
}

// Println logs an informational message. Operands are joined by spaces.
func (m *MCPLogger) Println(v ...any) {
	if m.silent {
		return
	}
	m.write("info", strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// Warnf logs a formatted message at warn level.
func (m *MCPLogger) Warnf(format string, v ...any) {
	if m.silent {
		return
	}
	m.write("warn", fmt.Sprintf(format, v...))
}

// SetOutput sets the output destination for the MCP logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *MCPLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}

// write emits one JSON line. The message is escaped by encoding/json so
// control characters and quotes survive a round trip.
func (m *MCPLogger) write(level, msg string) {
	encoded, err := json.Marshal(msg)
	if err != nil {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(`{"level":"`)
	buf.WriteString(level)
	buf.WriteString(`","message":`)
	buf.Write(encoded)
	buf.WriteString("}\n")

	m.mu.Lock()
	m.writer.Write(buf.Bytes())
	m.mu.Unlock()
}
