// Package log is a minimal leveled key/value logger writing to stderr.
// Agenda lines go to stdout; everything diagnostic goes through here so the
// two streams never mix.
package log

import (
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	default:
		return "ERROR"
	}
}

var (
	logger   = stdlog.New(os.Stderr, "", 0)
	minLevel = LevelInfo
)

func SetLevel(l Level) { minLevel = l }

func Debug(msg string, kv ...any) { write(LevelDebug, msg, kv) }
func Info(msg string, kv ...any)  { write(LevelInfo, msg, kv) }

// Error logs msg with err prepended to the key/value pairs.
func Error(msg string, err error, kv ...any) {
	write(LevelError, msg, append([]any{"err", err}, kv...))
}

func write(level Level, msg string, kv []any) {
	if level < minLevel {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format(time.RFC3339))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(msg)

	// kv is pairs: key, value, ...; a trailing odd value is dropped.
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", key, kv[i+1])
	}

	logger.Println(b.String())
}
