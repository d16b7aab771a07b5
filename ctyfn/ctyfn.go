// Package ctyfn adapts go-cty functions, like the ones from cty/function/stdlib, for currying
package ctyfn

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
	"go.uber.org/multierr"
)

var ErrArgument = errors.New("wrong cty function argument")

type Func struct {
	fun    function.Function
	params []function.Parameter
	vararg *function.Parameter
}

func FromFunction(f function.Function) *Func {
	return &Func{
		fun:    f,
		params: f.Params(),
		vararg: f.VarParam(),
	}
}

func (f *Func) Arity() int {
	return len(f.params)
}

// Apply calls the cty function. Arguments can be cty.Value or native Go values
// convertible to the type of the parameter. 'this' is ignored
func (f *Func) Apply(_ any, args ...any) (any, error) {
	if len(args) < len(f.params) {
		return nil, fmt.Errorf("expected at least %d arguments, got %d: %w", len(f.params), len(args), ErrArgument)
	}
	if f.vararg == nil && len(args) > len(f.params) {
		return nil, fmt.Errorf("expected %d arguments, got %d: %w", len(f.params), len(args), ErrArgument)
	}
	var err error
	values := make([]cty.Value, len(args))
	for i, a := range args {
		var p *function.Parameter
		if i < len(f.params) {
			p = &f.params[i]
		} else {
			p = f.vararg
		}
		v, errArg := toCtyValue(a, p.Type)
		if errArg != nil {
			err = multierr.Append(err, fmt.Errorf("argument #%d (%s): %v: %w", i, p.Name, errArg, ErrArgument))
			continue
		}
		values[i] = v
	}
	if err != nil {
		return nil, err
	}
	return f.fun.Call(values)
}

func toCtyValue(a any, ty cty.Type) (cty.Value, error) {
	switch v := a.(type) {
	case nil:
		return cty.NullVal(ty), nil
	case cty.Value:
		return v, nil
	}
	if ty.Equals(cty.DynamicPseudoType) {
		var err error
		if ty, err = gocty.ImpliedType(a); err != nil {
			return cty.NilVal, err
		}
	}
	return gocty.ToCtyValue(a, ty)
}

// ToNative converts primitive cty value to string, float64 or bool
func ToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}
	switch ty := v.Type(); {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, err
		}
		return f, nil
	case ty == cty.Bool:
		return v.True(), nil
	default:
		return nil, fmt.Errorf("ToNative: unsupported type %s", ty.FriendlyName())
	}
}
