package logsvc

import (
	"log"
	"os"

	"github.com/vazifa-app/vazifa/core"
)

type StdLogger struct {
	std *log.Logger
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger) *StdLogger {
	if std == nil {
		std = log.New(os.Stdout, "", log.LstdFlags|log.Lmicroseconds)
	}
	return &StdLogger{std: std}
}

func (l StdLogger) print(level, msg string, args []interface{}) {
	if len(args) == 0 {
		l.std.Printf("%s: %s", level, msg)
		return
	}
	l.std.Printf("%s: %s %v", level, msg, args)
}

func (l StdLogger) Debug(msg string, args ...interface{}) { l.print("DEBUG", msg, args) }
func (l StdLogger) Info(msg string, args ...interface{})  { l.print("INFO", msg, args) }
func (l StdLogger) Warn(msg string, args ...interface{})  { l.print("WARN", msg, args) }
func (l StdLogger) Error(msg string, args ...interface{}) { l.print("ERROR", msg, args) }

func (l StdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL", msg, args)
	os.Exit(1)
}
