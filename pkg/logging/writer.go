package logging

import (
	"bytes"
	"sync"
)

// LineWriter adapts a Logger to io.Writer: every completed line
// written becomes one structured log entry at the configured
// level. It lets a structured logger stand in for a
// line-oriented diagnostic stream, such as the progress or
// failure streams of a guard.Checker. Blank lines are dropped.
type LineWriter struct {
	mu     sync.Mutex
	logger Logger
	level  LogLevel
	buf    []byte
}

// NewLineWriter creates a LineWriter emitting at the given
// level.
func NewLineWriter(logger Logger, level LogLevel) *LineWriter {
	return &LineWriter{logger: logger, level: level}
}

// Write buffers p and emits one log entry per completed line.
// It never returns an error.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line, if any.
func (w *LineWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
	return nil
}

func (w *LineWriter) emit(line string) {
	if line == "" {
		return
	}
	switch w.level {
	case LevelDebug:
		w.logger.Debug(line)
	case LevelWarn:
		w.logger.Warn(line)
	case LevelError:
		w.logger.Error(line)
	default:
		w.logger.Info(line)
	}
}
