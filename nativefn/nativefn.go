// Package nativefn adapts ordinary Go functions to easycurry.Callable,
// so that func(a, b, c int) int can be curried with its own arity
package nativefn

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/lunfardo314/easycurry"
	"go.uber.org/multierr"
)

var (
	ErrNotAFunction = errors.New("not a function")
	ErrArgument     = errors.New("wrong argument")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Func is a Go function called through reflection
type Func struct {
	fun reflect.Value
	typ reflect.Type
}

func FromFunc(f any) (*Func, error) {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("FromFunc: %T: %w", f, ErrNotAFunction)
	}
	return &Func{
		fun: v,
		typ: v.Type(),
	}, nil
}

func MustFromFunc(f any) *Func {
	ret, err := FromFunc(f)
	if err != nil {
		panic(err)
	}
	return ret
}

// Arity is the number of fixed parameters. The variadic tail is not counted
func (f *Func) Arity() int {
	if f.typ.IsVariadic() {
		return f.typ.NumIn() - 1
	}
	return f.typ.NumIn()
}

func (f *Func) IsVariadic() bool {
	return f.typ.IsVariadic()
}

// Apply calls the function. Go functions have no receiver slot, so 'this' is ignored
func (f *Func) Apply(_ any, args ...any) (any, error) {
	in, err := f.arguments(args)
	if err != nil {
		return nil, err
	}
	return results(f.fun.Call(in))
}

func (f *Func) arguments(args []any) ([]reflect.Value, error) {
	arity := f.Arity()
	if len(args) < arity {
		return nil, fmt.Errorf("expected at least %d arguments, got %d: %w", arity, len(args), ErrArgument)
	}
	if !f.typ.IsVariadic() && len(args) > arity {
		return nil, fmt.Errorf("expected %d arguments, got %d: %w", arity, len(args), ErrArgument)
	}
	var err error
	ret := make([]reflect.Value, len(args))
	for i, a := range args {
		var t reflect.Type
		if i < arity {
			t = f.typ.In(i)
		} else {
			t = f.typ.In(arity).Elem()
		}
		v, errArg := convert(a, t)
		if errArg != nil {
			err = multierr.Append(err, fmt.Errorf("argument #%d: %v: %w", i, errArg, ErrArgument))
			continue
		}
		ret[i] = v
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func convert(a any, t reflect.Type) (reflect.Value, error) {
	if a == nil {
		return reflect.Zero(t), nil
	}
	if easycurry.IsPlaceholder(a) {
		return reflect.Value{}, fmt.Errorf("unfilled placeholder")
	}
	v := reflect.ValueOf(a)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("can't use %T as %v", a, t)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// results makes (any, error) from the returned values. The trailing error, if any, is returned
// as error, the rest is nil, a single value or []any
func results(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	ret := make([]any, len(out))
	for i := range out {
		ret[i] = out[i].Interface()
	}
	return ret, err
}
