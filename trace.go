package easycurry

import (
	"fmt"
	"strings"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Tracer wraps functions with logging of each invocation. The curried functions themselves never log
type Tracer struct {
	log       *zap.SugaredLogger
	numCalls  atomic.Uint64
	numFailed atomic.Uint64
}

func NewTracer(log *zap.SugaredLogger) *Tracer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Tracer{log: log}
}

// Wrap returns function which traces calls to fn under the name
func (t *Tracer) Wrap(name string, fn Function) Function {
	log := t.log.Named(name)
	return func(this any, args ...any) (any, error) {
		t.numCalls.Inc()
		log.Debugf("IN: %s", FormatArgs(args))
		ret, err := fn(this, args...)
		if err != nil {
			t.numFailed.Inc()
			log.Debugf("FAILED: '%v'", err)
			return ret, err
		}
		log.Debugf("OUT: %s", formatArg(ret))
		return ret, nil
	}
}

// WrapCallable traces calls of the callable, keeping its arity
func (t *Tracer) WrapCallable(name string, c Callable) *Curried {
	return withArity(c.Arity(), t.Wrap(name, c.Apply))
}

func (t *Tracer) NumCalls() uint64 {
	return t.numCalls.Load()
}

func (t *Tracer) NumFailed() uint64 {
	return t.numFailed.Load()
}

// FormatArgs renders argument list, placeholders as '__'
func FormatArgs(args []any) string {
	s := make([]string, len(args))
	for i, a := range args {
		s[i] = formatArg(a)
	}
	return "(" + strings.Join(s, ", ") + ")"
}

func formatArg(a any) string {
	switch v := a.(type) {
	case nil:
		return "nil"
	case *Curried:
		return fmt.Sprintf("curried/%d", v.Arity())
	case []byte:
		return fmt.Sprintf("0x%x", v)
	}
	if IsPlaceholder(a) {
		return "__"
	}
	return fmt.Sprintf("%v", a)
}
