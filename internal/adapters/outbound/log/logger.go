package log

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
// Output defaults to os.Stdout.
type InitLogger struct {
	Output io.Writer
	Prefix string
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	out := il.Output
	if out == nil {
		out = os.Stdout
	}
	depend.Register(log.New(out, il.Prefix, log.LstdFlags|log.Lmsgprefix))
	return ctx, nil
}
