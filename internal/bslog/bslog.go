// Package bslog provides the small leveled logger used for optional
// diagnostics in package bls. It is adapted in style from this lineage's
// pkg/log: a level enum, a formatter interface, and text/JSON renderers.
// Nothing in package bls logs on the successful verification hot path;
// diagnostics are limited to decode and subgroup-check failures and
// rejected points at infinity.
package bslog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Level is the severity of a log entry.
type Level int

const (
	// DEBUG is for development diagnostics such as decode failures.
	DEBUG Level = iota
	// INFO is for general operational messages.
	INFO
	// WARN indicates a potentially harmful situation.
	WARN
	// ERROR indicates a failure that does not stop the caller.
	ERROR
)

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Entry holds all data for a single log event.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Fields    map[string]interface{}
}

// Formatter renders an Entry into a printable line.
type Formatter interface {
	Format(entry Entry) string
}

// TextFormatter renders entries as plain text:
//
//	[2024-01-01 12:00:00] DEBUG message key=value
type TextFormatter struct {
	TimeFormat string
}

// Format renders entry as a single text line.
func (f *TextFormatter) Format(entry Entry) string {
	tf := f.TimeFormat
	if tf == "" {
		tf = "2006-01-02 15:04:05"
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(entry.Timestamp.Format(tf))
	b.WriteString("] ")
	b.WriteString(fmt.Sprintf("%-5s", entry.Level.String()))
	b.WriteString(" ")
	b.WriteString(entry.Message)

	for _, k := range sortedKeys(entry.Fields) {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(fmt.Sprintf("%v", entry.Fields[k]))
	}
	return b.String()
}

// JSONFormatter renders entries as one JSON object per line.
type JSONFormatter struct {
	TimeFormat string
}

// Format renders entry as a JSON string.
func (f *JSONFormatter) Format(entry Entry) string {
	tf := f.TimeFormat
	if tf == "" {
		tf = time.RFC3339
	}

	obj := make(map[string]interface{}, 3+len(entry.Fields))
	obj["time"] = entry.Timestamp.Format(tf)
	obj["level"] = entry.Level.String()
	obj["msg"] = entry.Message
	for k, v := range entry.Fields {
		obj[k] = v
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Sprintf(`{"time":%q,"level":%q,"msg":%q,"error":"marshal failed"}`,
			entry.Timestamp.Format(tf), entry.Level.String(), entry.Message)
	}
	return string(data)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Logger writes formatted entries at or above a minimum level to a writer.
type Logger struct {
	out    io.Writer
	level  Level
	format Formatter
}

// New creates a Logger writing lines formatted by format to out, at or
// above level.
func New(out io.Writer, level Level, format Formatter) *Logger {
	if format == nil {
		format = &TextFormatter{}
	}
	return &Logger{out: out, level: level, format: format}
}

// NoOp returns a Logger that discards everything. This is the default
// bls.Config.Logger, matching the non-goal that excludes business-event
// logging from the cryptographic hot path.
func NoOp() *Logger {
	return &Logger{out: io.Discard, level: ERROR + 1}
}

func (l *Logger) log(level Level, msg string, fields map[string]interface{}) {
	if l == nil || level < l.level {
		return
	}
	entry := Entry{Timestamp: time.Now(), Level: level, Message: msg, Fields: fields}
	fmt.Fprintln(l.out, l.format.Format(entry))
}

// Debug logs at DEBUG.
func (l *Logger) Debug(msg string, fields map[string]interface{}) { l.log(DEBUG, msg, fields) }

// Info logs at INFO.
func (l *Logger) Info(msg string, fields map[string]interface{}) { l.log(INFO, msg, fields) }

// Warn logs at WARN.
func (l *Logger) Warn(msg string, fields map[string]interface{}) { l.log(WARN, msg, fields) }

// Error logs at ERROR.
func (l *Logger) Error(msg string, fields map[string]interface{}) { l.log(ERROR, msg, fields) }
