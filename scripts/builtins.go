package scripts

import (
	"context"
	"fmt"
	"time"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/taicalc/calcs"
	"github.com/reusee/taicalc/sessions"
	"go.starlark.net/starlark"
)

// globals binds session to the script builtins:
//
//	press(*keys) -> display    each argument is a line of keys, like "12 + 3"
//	display() -> display
//	clear()
//	state() -> {"Buffer", "Locked", "ResultShown"}
//	history(limit=0) -> [{"id", "expression", "result", "display", "time"}], newest first
func globals(ctx context.Context, session *sessions.Session) starlark.StringDict {
	return starlark.StringDict{

		"press": starlark.NewBuiltin("press", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: unexpected keyword arguments", fn.Name())
			}
			display := session.Display()
			for _, arg := range args {
				var line string
				switch arg := arg.(type) {
				case starlark.String:
					line = string(arg)
				case starlark.Int, starlark.Float:
					line = arg.String()
				default:
					return nil, fmt.Errorf("%s: want string, got %s", fn.Name(), arg.Type())
				}
				var err error
				display, err = session.PressLine(ctx, line)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", fn.Name(), err)
				}
			}
			return starlark.String(display), nil
		}),

		"display": starlarkutil.MakeFunc("display", func() starlark.Value {
			return starlark.String(session.Display())
		}),

		"clear": starlarkutil.MakeFunc("clear", func() {
			_, _ = session.PressKey(ctx, calcs.Key{Kind: calcs.KeyClear})
		}),

		"state": starlarkutil.MakeFunc("state", func() starlark.Value {
			return toStarlarkValue(session.State())
		}),

		// limit is optional
		"history": starlark.NewBuiltin("history", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			limit := 0
			if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "limit?", &limit); err != nil {
				return nil, err
			}
			entries, err := session.History(ctx, limit)
			if err != nil {
				return nil, err
			}
			list := make([]any, 0, len(entries))
			for _, entry := range entries {
				list = append(list, map[string]any{
					"id":         entry.ID,
					"expression": entry.Expression,
					"result":     entry.Result,
					"display":    entry.Display,
					"time":       entry.Time.Format(time.RFC3339Nano),
				})
			}
			return toStarlarkValue(list), nil
		}),
	}
}
