package scripts

import (
	"context"
	"fmt"

	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/sessions"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Run executes src, a file name, string or []byte, against session.
type Run func(ctx context.Context, session *sessions.Session, filename string, src any) error

func (Module) Run(
	logger logs.Logger,
	output Output,
	newSpan logs.NewSpan,
) Run {
	return func(ctx context.Context, session *sessions.Session, filename string, src any) error {
		ctx, _ = newSpan(ctx, "")
		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(output, msg)
			},
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel(context.Cause(ctx).Error())
		})
		defer stop()

		logger.DebugContext(ctx, "run script", "file", filename)
		if _, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, globals(ctx, session)); err != nil {
			return logs.WrapSpan(ctx, fmt.Errorf("run %s: %w", filename, err))
		}
		return nil
	}
}

// Tap starts an interactive Starlark prompt on stdin bound to session.
type Tap func(ctx context.Context, session *sessions.Session)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, session *sessions.Session) {
		logger.InfoContext(ctx, "tap", "display", session.Display())
		defer func() {
			logger.InfoContext(ctx, "tap end", "display", session.Display())
		}()
		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, globals(ctx, session))
	}
}
