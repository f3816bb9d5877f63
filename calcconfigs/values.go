package calcconfigs

import (
	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/vars"
)

// MaxBufferLength is zero when neither a command word nor a config file sets it.
type MaxBufferLength int

var maxLengthFlag = cmds.Var[int]("-max-length")

func (Module) MaxBufferLength(
	loader configs.Loader,
) MaxBufferLength {
	return MaxBufferLength(vars.FirstNonZero(
		*maxLengthFlag,
		configs.First[int](loader, "max_buffer_length"),
	))
}

// Precision is zero when unset.
type Precision int

var precisionFlag = cmds.Var[int]("-precision")

func (Module) Precision(
	loader configs.Loader,
) Precision {
	return Precision(vars.FirstNonZero(
		*precisionFlag,
		configs.First[int](loader, "precision"),
	))
}

// HistoryPath is empty when history is kept in memory only.
type HistoryPath string

var historyPathFlag = cmds.Var[string]("-history")

func (Module) HistoryPath(
	loader configs.Loader,
) HistoryPath {
	return HistoryPath(vars.FirstNonZero(
		*historyPathFlag,
		configs.First[string](loader, "history_path"),
	))
}
