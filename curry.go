// Package easycurry implements currying with partial application, several arguments per call
// and placeholders for the argument positions to be filled later
package easycurry

import (
	"github.com/lunfardo314/unitrie/common"
)

// Function is the function being curried. 'this' is the context of the call, it is passed
// as is to the function when it is finally invoked
type Function func(this any, args ...any) (any, error)

// Callable is anything which can be invoked and reports the number of parameters it expects
type Callable interface {
	Apply(this any, args ...any) (any, error)
	Arity() int
}

// Curried is an immutable curried function with the declared arity.
// Each call returns either the result of the wrapped function or new *Curried
// which waits for the missing arguments
type Curried struct {
	arity int
	fun   Function
}

// withArity wraps function into the Curried which reports n as its arity
func withArity(n int, fun Function) *Curried {
	common.Assert(n >= 0, "withArity: arity can't be negative")
	return &Curried{
		arity: n,
		fun:   fun,
	}
}

// CurryN returns curried equivalent of fn with the specified arity.
// If g := CurryN(3, f), the following are equivalent:
//   - g(1)(2)(3)
//   - g(1)(2, 3)
//   - g(1, 2)(3)
//   - g(1, 2, 3)
//
// Placeholder may be used to leave gaps, which are filled left to right by
// the arguments of the subsequent calls. With _ = Placeholder, the following are
// equivalent to g(1, 2, 3) as well:
//   - g(_, 2, 3)(1)
//   - g(_, _, 3)(1)(2)
//   - g(_, _, 3)(1, 2)
//   - g(_, 2)(1)(3)
//   - g(_, 2)(1, 3)
//   - g(_, 2)(_, 3)(1)
//
// Arguments beyond the arity are passed to fn as well. Placeholders present in the
// call which satisfies the arity are passed to fn as is
func CurryN(length int, fn Function) *Curried {
	return withArity(length, func(this any, args ...any) (any, error) {
		n := len(args)
		shortfall := length - n + countPlaceholders(args)
		if shortfall <= 0 {
			return fn(this, args...)
		}
		initialArgs := make([]any, n)
		copy(initialArgs, args)

		return CurryN(shortfall, func(this any, currentArgs ...any) (any, error) {
			return fn(this, combineArgs(initialArgs, currentArgs)...)
		}), nil
	})
}

// combineArgs fills placeholders in initial with the consecutive elements of current.
// Remaining elements of current are appended to the end
func combineArgs(initial, current []any) []any {
	ret := make([]any, 0, len(initial)+len(current))
	j := 0
	for _, val := range initial {
		if !IsPlaceholder(val) {
			ret = append(ret, val)
			continue
		}
		if j < len(current) {
			ret = append(ret, current[j])
		} else {
			ret = append(ret, nil)
		}
		j++
	}
	if j < len(current) {
		ret = append(ret, current[j:]...)
	}
	return ret
}

// Curry curries the callable with its own declared arity
func Curry(c Callable) *Curried {
	return CurryN(c.Arity(), c.Apply)
}

func (c *Curried) Arity() int {
	return c.arity
}

// Apply calls the curried function with the context
func (c *Curried) Apply(this any, args ...any) (any, error) {
	return c.fun(this, args...)
}

// Call calls the curried function with nil context
func (c *Curried) Call(args ...any) (any, error) {
	return c.fun(nil, args...)
}

func (c *Curried) MustCall(args ...any) any {
	ret, err := c.Call(args...)
	common.AssertNoError(err)
	return ret
}

// Function returns call operator of the curried function, to be used with another CurryN
func (c *Curried) Function() Function {
	return c.fun
}

// AsCurried checks if the result of the call is the curried function
func AsCurried(v any) (*Curried, bool) {
	ret, ok := v.(*Curried)
	return ret, ok
}
