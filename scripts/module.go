package scripts

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Output receives print() from scripts.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}
