package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/histories"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/modes"
	"github.com/reusee/taicalc/scripts"
	"github.com/reusee/taicalc/sessions"
)

var (
	scriptFiles  = cmds.Collect[string]("-script")
	evalLines    = cmds.Collect[string]("-eval")
	clearHistory = cmds.Switch("-clear-history")
	tapFlag      = cmds.Switch("-tap")

	listHistory  bool
	historyLimit int
)

func init() {
	cmds.Define("-list-history", cmds.Func(func(limit int) {
		listHistory = true
		historyLimit = limit
	}).Desc("print the last N evaluations, 0 for all"))
}

func main() {
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(sessions.Module),
		new(scripts.Module),
		modes.ForProduction(),
	).Call(func(
		newSession sessions.NewSession,
		store histories.Store,
		run scripts.Run,
		tap scripts.Tap,
		logger logs.Logger,
	) {
		defer store.Close()
		ctx := context.Background()
		session := newSession()
		interactive := true

		if *clearHistory {
			interactive = false
			if err := store.Clear(ctx); err != nil {
				fail(err)
			}
		}

		for _, path := range *scriptFiles {
			interactive = false
			if err := run(ctx, session, path, nil); err != nil {
				fail(err)
			}
		}

		for _, line := range *evalLines {
			interactive = false
			display, err := session.PressLine(ctx, line)
			if err != nil {
				fail(err)
			}
			fmt.Println(display)
		}

		if listHistory {
			interactive = false
			if err := printHistory(ctx, os.Stdout, session, historyLimit); err != nil {
				fail(err)
			}
		}

		if *tapFlag {
			tap(ctx, session)
			return
		}

		if interactive {
			logger.DebugContext(ctx, "interactive")
			runREPL(ctx, session)
		}
	})
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
