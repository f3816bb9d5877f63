package logs

import (
	"log/slog"

	"github.com/reusee/taicalc/cmds"
)

var level = new(slog.LevelVar)

func init() {
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+l.String()))
	}
}

// SetLevel changes the level of every logger provided by Module.
func SetLevel(l slog.Level) {
	level.Set(l)
}
