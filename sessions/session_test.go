package sessions

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/calcs"
	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/histories"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/modes"
)

func testScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	).Fork(defs...)
}

func TestSessionDigitAfterResult(t *testing.T) {
	testScope(t).Call(func(
		newSession NewSession,
	) {
		ctx := context.Background()
		session := newSession()
		display, err := session.PressLine(ctx, "2 + 3 =")
		if err != nil {
			t.Fatal(err)
		}
		if display != "2 + 3 = 5" {
			t.Fatalf("got %q", display)
		}
		display, err = session.PressLine(ctx, "7")
		if err != nil {
			t.Fatal(err)
		}
		if display != "7" {
			t.Fatalf("got %q", display)
		}
		if state := session.State(); state.Locked || state.ResultShown {
			t.Fatalf("got %+v", state)
		}
	})
}

func TestSession(t *testing.T) {
	testScope(t).Call(func(
		newSession NewSession,
	) {
		ctx := context.Background()
		session := newSession()

		display, err := session.PressAll(ctx, "1", "2", "+", "3", "×", "4", "=")
		if err != nil {
			t.Fatal(err)
		}
		if display != "12 + 3 × 4 = 24" {
			t.Fatalf("got %q", display)
		}
		if !session.State().ResultShown {
			t.Fatal()
		}

		// repeated equals does not record again
		if _, err := session.Press(ctx, "="); err != nil {
			t.Fatal(err)
		}

		display, err = session.PressLine(ctx, "7 √ =")
		if err != nil {
			t.Fatal(err)
		}
		if display != "2.64575131106459 = 2.64575131106459" {
			t.Fatalf("got %q", display)
		}

		entries, err := session.History(ctx, 0)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 2 {
			t.Fatalf("got %+v", entries)
		}
		if entries[1].Expression != "12 + 3 × 4" || entries[1].Result != 24 || entries[1].Display != "12 + 3 × 4 = 24" {
			t.Fatalf("got %+v", entries[1])
		}
		if entries[0].Expression != "2.64575131106459" {
			t.Fatalf("got %+v", entries[0])
		}
	})
}

func TestSessionUnknownKey(t *testing.T) {
	testScope(t).Call(func(
		newSession NewSession,
	) {
		ctx := context.Background()
		session := newSession()
		display, err := session.PressAll(ctx, "5", "?", "6")
		if !errors.Is(err, calcs.ErrUnknownKey) {
			t.Fatalf("got %v", err)
		}
		if display != "5" {
			t.Fatalf("got %q", display)
		}
		if _, err := session.PressLine(ctx, "1 foo"); !errors.Is(err, calcs.ErrUnknownKey) {
			t.Fatalf("got %v", err)
		}
		if session.Display() != "5" {
			t.Fatalf("got %q", session.Display())
		}
	})
}

func TestSessionMaxLength(t *testing.T) {
	testScope(t,
		dscope.Provide(calcconfigs.MaxBufferLength(6)),
	).Call(func(
		newSession NewSession,
	) {
		session := newSession()
		display, err := session.PressLine(context.Background(), "123456789")
		if err != nil {
			t.Fatal(err)
		}
		if display != "123456" {
			t.Fatalf("got %q", display)
		}
	})
}

type failingStore struct {
	histories.Store
}

var errStore = errors.New("store failed")

func (failingStore) Append(context.Context, histories.Entry) (int64, error) {
	return 0, errStore
}

func TestSessionHistoryError(t *testing.T) {
	testScope(t,
		func() histories.Store {
			return failingStore{}
		},
	).Call(func(
		newSession NewSession,
	) {
		session := newSession()
		display, err := session.PressLine(context.Background(), "1 + 1 =")
		if !errors.Is(err, errStore) {
			t.Fatalf("got %v", err)
		}
		if display != "1 + 1 = 2" {
			t.Fatalf("got %q", display)
		}
	})
}

func TestSessionConcurrent(t *testing.T) {
	testScope(t).Call(func(
		newSession NewSession,
	) {
		ctx := context.Background()
		session := newSession()
		var wg sync.WaitGroup
		for range 8 {
			wg.Go(func() {
				for range 50 {
					if _, err := session.PressAll(ctx, "1", "+"); err != nil {
						t.Error(err)
						return
					}
				}
			})
		}
		wg.Wait()
		display := session.Display()
		if len(display) > calcs.MaxBufferLength || !strings.HasPrefix(display, "1") {
			t.Fatalf("got %q", display)
		}
	})
}

func TestSessionLogs(t *testing.T) {
	buf := new(bytes.Buffer)
	logs.SetLevel(-4)
	defer logs.SetLevel(0)
	testScope(t,
		func() logs.Writer {
			return buf
		},
	).Call(func(
		newSession NewSession,
	) {
		if _, err := newSession().Press(context.Background(), "8"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "key=8") {
			t.Fatalf("got %s", buf.String())
		}
	})
}
