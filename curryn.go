package easycurry

import (
	"errors"
	"fmt"
)

var ErrWrongArgument = errors.New("wrong argument")

// CurriedCurryN is CurryN, curried by itself. It takes arity (int) and the function
// (Function, func(any, ...any) (any, error) or Callable) and returns *Curried.
// CurriedCurryN.Call(Placeholder, fn) returns function which waits for the arity
var CurriedCurryN = CurryN(2, func(_ any, args ...any) (any, error) {
	length, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("CurryN: arity must be int, got %T: %w", args[0], ErrWrongArgument)
	}
	if length < 0 {
		return nil, fmt.Errorf("CurryN: arity can't be negative (%d): %w", length, ErrWrongArgument)
	}
	fn, err := toFunction(args[1])
	if err != nil {
		return nil, err
	}
	return CurryN(length, fn), nil
})

func toFunction(f any) (Function, error) {
	switch fun := f.(type) {
	case Function:
		return fun, nil
	case func(any, ...any) (any, error):
		return fun, nil
	case Callable:
		return fun.Apply, nil
	}
	return nil, fmt.Errorf("CurryN: function expected, got %T: %w", f, ErrWrongArgument)
}
