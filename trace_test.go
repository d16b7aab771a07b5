package easycurry

import (
	"errors"
	"testing"

	"github.com/lunfardo314/easycurry/util/testutil"
	"github.com/stretchr/testify/require"
)

func TestTracer(t *testing.T) {
	t.Run("nil logger", func(t *testing.T) {
		tr := NewTracer(nil)
		g := CurryN(3, tr.Wrap("abc", abc))
		require.EqualValues(t, 123, chain(t, g, args(__, 2), args(1, 3)))
		require.EqualValues(t, 1, tr.NumCalls())
		require.EqualValues(t, 0, tr.NumFailed())
	})
	t.Run("observed", func(t *testing.T) {
		log, logs := testutil.NewObservedLogger(true)
		tr := NewTracer(log)
		g := CurryN(3, tr.Wrap("abc", abc))
		h := chain(t, g, args(__, __, 3))
		require.EqualValues(t, 0, tr.NumCalls())
		require.EqualValues(t, 0, logs.Len())

		require.EqualValues(t, 123, chain(t, h, args(1), args(2)))
		require.EqualValues(t, 1, tr.NumCalls())
		require.EqualValues(t, 1, logs.FilterMessage("IN: (1, 2, 3)").Len())
		require.EqualValues(t, 1, logs.FilterMessage("OUT: 123").Len())
		for _, e := range logs.All() {
			require.EqualValues(t, "abc", e.LoggerName)
		}
	})
	t.Run("failed", func(t *testing.T) {
		log, logs := testutil.NewObservedLogger(true)
		tr := NewTracer(log)
		errTest := errors.New("test error")
		g := tr.WrapCallable("fail", CurryN(1, func(_ any, _ ...any) (any, error) {
			return nil, errTest
		}))
		require.EqualValues(t, 1, g.Arity())
		_, err := g.Call(__, 1)
		require.True(t, err == errTest)
		require.EqualValues(t, 1, tr.NumCalls())
		require.EqualValues(t, 1, tr.NumFailed())
		require.EqualValues(t, 1, logs.FilterMessage("IN: (__, 1)").Len())
		require.EqualValues(t, 1, logs.FilterMessageSnippet("FAILED").Len())
	})
	t.Run("info level", func(t *testing.T) {
		log, logs := testutil.NewObservedLogger(false)
		tr := NewTracer(log)
		require.EqualValues(t, 6, CurryN(2, tr.Wrap("sum", sum)).MustCall(1, 2, 3))
		require.EqualValues(t, 0, logs.Len())
		require.EqualValues(t, 1, tr.NumCalls())
	})
	t.Run("simple logger", func(t *testing.T) {
		tr := NewTracer(testutil.NewSimpleLogger(true))
		require.EqualValues(t, 6, CurryN(2, tr.Wrap("sum", sum)).MustCall(1, 2, 3))
	})
}

func TestFormatArgs(t *testing.T) {
	require.EqualValues(t, "()", FormatArgs(nil))
	require.EqualValues(t, "(1, __, 0x0102, nil, abc)", FormatArgs([]any{1, Placeholder, []byte{1, 2}, nil, "abc"}))
	require.EqualValues(t, "(curried/3)", FormatArgs([]any{CurryN(3, abc)}))
}
