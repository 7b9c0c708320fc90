package hostfn

import (
	"github.com/samber/lo"
)

// Branch is the summary shape selected for a host function call.
type Branch int

const (
	// BranchOther covers host function types without a dedicated summary. Only the type is
	// shown.
	BranchOther Branch = iota
	BranchUploadWasm
	BranchCreateContract
	BranchInvokeContract
)

func (b Branch) String() string {
	switch b {
	case BranchUploadWasm:
		return "upload_wasm"
	case BranchCreateContract:
		return "create_contract"
	case BranchInvokeContract:
		return "invoke_contract"
	case BranchOther:
		return "other"
	}

	return "other"
}

// HasParameters reports whether summaries of this branch list parameters.
func (b Branch) HasParameters() bool {
	return b == BranchCreateContract || b == BranchInvokeContract
}

// Summary is the display model of one host function call.
type Summary struct {
	Type       FunctionType        `json:"type" yaml:"type"`
	Branch     Branch              `json:"-" yaml:"-"`
	Parameters []RenderedParameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Dispatcher summarizes host function calls.
type Dispatcher struct {
	normalizer *Normalizer
}

// NewDispatcher returns a Dispatcher decoding invoke parameters with n. A nil n uses a default
// Normalizer.
func NewDispatcher(n *Normalizer) *Dispatcher {
	if n == nil {
		n = NewNormalizer(nil)
	}

	return &Dispatcher{normalizer: n}
}

// Dispatch summarizes the first host function call of rec.
func (d *Dispatcher) Dispatch(rec Record) (Summary, error) {
	call, err := rec.First()
	if err != nil {
		return Summary{}, err
	}

	return d.DispatchCall(call)
}

// DispatchCall summarizes a single host function call.
func (d *Dispatcher) DispatchCall(call Call) (Summary, error) {
	switch call.Type {
	case FunctionTypeUploadWasm:
		// Upload parameters are not summarized.
		return Summary{Type: call.Type, Branch: BranchUploadWasm}, nil
	case FunctionTypeCreateContract:
		return Summary{
			Type:       call.Type,
			Branch:     BranchCreateContract,
			Parameters: fieldParameters(call.Parameters),
		}, nil
	case FunctionTypeInvokeContract:
		params, err := d.normalizer.Normalize(call.Parameters)
		if err != nil {
			return Summary{}, err
		}

		return Summary{Type: call.Type, Branch: BranchInvokeContract, Parameters: params}, nil
	default:
		return Summary{Type: call.Type, Branch: BranchOther}, nil
	}
}

// fieldParameters reads create parameters, which are recorded in readable form already.
func fieldParameters(params []Parameter) []RenderedParameter {
	return lo.Map(params, func(p Parameter, _ int) RenderedParameter {
		key, value, ok := p.Field()
		if !ok {
			return RenderedParameter{Key: VoidLabel}
		}

		return RenderedParameter{Key: key, Value: value}
	})
}
