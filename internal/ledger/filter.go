package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	apperrors "github.com/livp123/blockledger/pkg/errors"
)

// FilterEnv is the environment an extra filter expression is evaluated against.
type FilterEnv struct {
	Timestamp     time.Time
	SourceIP      string
	DestinationIP string
	Description   string
	Priority      string
}

// Filter is an optional boolean expression applied after the blocked-flag and
// date checks, e.g. `Priority in ["1", "2"]` or `SourceIP startsWith "10."`.
type Filter struct {
	Source  string
	program *vm.Program
}

// CompileFilter compiles src. An empty source yields a nil Filter, which matches everything.
func CompileFilter(src string) (*Filter, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}
	program, err := expr.Compile(src, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, apperrors.NewFilterError(src, err)
	}
	return &Filter{Source: src, program: program}, nil
}

// Match evaluates the filter for ev.
func (f *Filter) Match(ev LogEvent) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, FilterEnv{
		Timestamp:     ev.Timestamp,
		SourceIP:      ev.SourceIP,
		DestinationIP: ev.DestinationIP,
		Description:   ev.Description,
		Priority:      ev.Priority,
	})
	if err != nil {
		return false, err
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q returned %T, want bool", f.Source, out)
	}
	return matched, nil
}
