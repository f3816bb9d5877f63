package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/reusee/taicalc/calcs"
	"github.com/reusee/taicalc/histories"
	"github.com/reusee/taicalc/logs"
)

// Session confines one Engine to serialized access and records evaluations.
type Session struct {
	mu      sync.Mutex
	engine  *calcs.Engine
	history histories.Store
	logger  logs.Logger
	now     func() time.Time
}

func (s *Session) Press(ctx context.Context, key string) (string, error) {
	k, err := calcs.ParseKey(key)
	if err != nil {
		return s.Display(), err
	}
	return s.PressKey(ctx, k)
}

func (s *Session) PressKey(ctx context.Context, key calcs.Key) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shown := s.engine.State().ResultShown
	display, err := s.engine.Press(key)
	if err != nil {
		s.logger.ErrorContext(ctx, "press", "key", key.String(), "display", display, "error", err)
		return display, logs.WrapSpan(ctx, err)
	}
	s.logger.DebugContext(ctx, "press", "key", key.String(), "display", display)

	if !shown && s.engine.State().ResultShown {
		result, _ := s.engine.Result()
		entry := histories.Entry{
			Expression: s.engine.Expression(),
			Result:     result,
			Display:    display,
			Time:       s.now(),
		}
		if _, err := s.history.Append(ctx, entry); err != nil {
			return display, logs.WrapSpan(ctx, fmt.Errorf("record history: %w", err))
		}
	}

	return display, nil
}

// PressAll stops at the first error.
func (s *Session) PressAll(ctx context.Context, keys ...string) (display string, err error) {
	display = s.Display()
	for _, key := range keys {
		display, err = s.Press(ctx, key)
		if err != nil {
			return
		}
	}
	return
}

// PressLine presses the keys of line as parsed by calcs.ParseKeys.
func (s *Session) PressLine(ctx context.Context, line string) (string, error) {
	keys, err := calcs.ParseKeys(line)
	if err != nil {
		return s.Display(), err
	}
	display := s.Display()
	for _, key := range keys {
		display, err = s.PressKey(ctx, key)
		if err != nil {
			return display, err
		}
	}
	return display, nil
}

func (s *Session) Display() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Display()
}

func (s *Session) State() calcs.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.State()
}

func (s *Session) History(ctx context.Context, limit int) ([]histories.Entry, error) {
	return s.history.Recent(ctx, limit)
}
