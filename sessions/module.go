package sessions

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/calcs"
	"github.com/reusee/taicalc/histories"
	"github.com/reusee/taicalc/logs"
)

type Module struct {
	dscope.Module
	Calcs     calcs.Module
	Histories histories.Module
	Logs      logs.Module
}

type NewSession func() *Session

func (Module) NewSession(
	newEngine calcs.NewEngine,
	store histories.Store,
	logger logs.Logger,
) NewSession {
	return func() *Session {
		return &Session{
			engine:  newEngine(),
			history: store,
			logger:  logger,
			now:     time.Now,
		}
	}
}
