package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/reusee/taicalc/sessions"
)

func runREPL(ctx context.Context, session *sessions.Session) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".taicalc_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()
	fmt.Println(session.Display())
	loop(ctx, rl, session, os.Stdout, os.Stderr)
}

type lineReader interface {
	Readline() (string, error)
}

// loop reads lines until EOF or interrupt. A line starting with ':' is a
// command, anything else is pressed as keys.
func loop(ctx context.Context, r lineReader, session *sessions.Session, out, errOut io.Writer) {
	for {
		line, err := r.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if cmd, ok := strings.CutPrefix(line, ":"); ok {
			name, arg, _ := strings.Cut(cmd, " ")
			switch name {
			case "q", "quit":
				return
			case "h", "history":
				limit := 10
				if arg = strings.TrimSpace(arg); arg != "" {
					limit, err = strconv.Atoi(arg)
					if err != nil {
						fmt.Fprintf(errOut, "error: bad limit: %s\n", arg)
						continue
					}
				}
				if err := printHistory(ctx, out, session, limit); err != nil {
					fmt.Fprintf(errOut, "error: %v\n", err)
				}
			case "s", "state":
				state := session.State()
				fmt.Fprintf(out, "buffer=%q locked=%v result=%v\n", state.Buffer, state.Locked, state.ResultShown)
			default:
				fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
			}
			continue
		}

		display, err := session.PressLine(ctx, line)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		fmt.Fprintln(out, display)
	}
}

func printHistory(ctx context.Context, w io.Writer, session *sessions.Session, limit int) error {
	entries, err := session.History(ctx, limit)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\n", entry.ID, entry.Time.Local().Format(time.DateTime), entry.Display)
	}
	return nil
}
