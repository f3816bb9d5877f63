package histories

import (
	"context"
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/calcconfigs"
	"github.com/reusee/taicalc/logs"
)

type Module struct {
	dscope.Module
	Configs calcconfigs.Module
}

// Store is backed by SQLite when a history path is configured.
func (Module) Store(
	path calcconfigs.HistoryPath,
	logger logs.Logger,
) Store {
	if path == "" {
		return NewMemory()
	}
	store, err := NewSQLite(context.Background(), string(path))
	if err != nil {
		logger.Error("open history store", "path", path, "error", err)
		panic(fmt.Errorf("history store %s: %w", path, err))
	}
	logger.Info("history store", "path", path)
	return store
}
