package formulafn

import (
	"errors"
	"fmt"

	"github.com/lunfardo314/easyfl"
	"github.com/lunfardo314/unitrie/common"
	"go.uber.org/multierr"
)

var ErrArgument = errors.New("wrong formula argument")

// Formula is compiled EasyFL expression. Its arity is the number of $0..$N parameters
type Formula struct {
	source    string
	numParams int
	bytecode  []byte
	trace     bool
}

// FromSource compiles the expression. If trace is set, evaluation is traced to stdout
func FromSource(source string, trace ...bool) (*Formula, error) {
	_, numParams, bytecode, err := easyfl.CompileExpression(source)
	if err != nil {
		return nil, fmt.Errorf("formula '%s': %v", source, err)
	}
	return &Formula{
		source:    source,
		numParams: numParams,
		bytecode:  bytecode,
		trace:     len(trace) > 0 && trace[0],
	}, nil
}

func MustFromSource(source string, trace ...bool) *Formula {
	ret, err := FromSource(source, trace...)
	common.AssertNoError(err)
	return ret
}

func (f *Formula) Arity() int {
	return f.numParams
}

func (f *Formula) Source() string {
	return f.source
}

func (f *Formula) Bytecode() []byte {
	return f.bytecode
}

// Apply evaluates the formula. 'this' is the data context of the evaluation:
// easyfl.GlobalData is used as is, anything else is wrapped into one
func (f *Formula) Apply(this any, args ...any) (any, error) {
	params, err := dataArgs(args)
	if err != nil {
		return nil, err
	}
	ctx := f.evalContext(this)
	var ret []byte
	err = common.CatchPanicOrError(func() error {
		var err1 error
		ret, err1 = easyfl.EvalFromBinary(ctx, f.bytecode, params...)
		return err1
	})
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (f *Formula) evalContext(this any) easyfl.GlobalData {
	if glb, ok := this.(easyfl.GlobalData); ok {
		return glb
	}
	if f.trace {
		return easyfl.NewGlobalDataTracePrint(this)
	}
	return easyfl.NewGlobalDataNoTrace(this)
}

func dataArgs(args []any) ([][]byte, error) {
	var err error
	ret := make([][]byte, len(args))
	for i, a := range args {
		switch d := a.(type) {
		case nil:
		case []byte:
			ret[i] = d
		case string:
			ret[i] = []byte(d)
		case byte:
			ret[i] = []byte{d}
		default:
			err = multierr.Append(err, fmt.Errorf("argument #%d: %T is not data: %w", i, a, ErrArgument))
		}
	}
	if err != nil {
		return nil, err
	}
	return ret, nil
}
