package metadata

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Argument keys probed by the built-in rules.
const (
	ArgPath          = "path"
	ArgTarget        = "target"
	ArgProgramTarget = "program_target"
	ArgInputTarget   = "input_target"
	ArgCommand       = "command"
)

// Args is the raw command-line argument bag. Rules only probe it; no key is
// guaranteed to be present.
type Args interface {
	Lookup(key string) (value any, ok bool)
}

// ArgMap is an Args backed by a plain map.
type ArgMap map[string]any

// Lookup implements Args.
func (m ArgMap) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// FlagArgs exposes the flags that were explicitly set on a command line.
// Keys match flag names with "_" and "-" treated alike.
type FlagArgs struct {
	flags *pflag.FlagSet
}

// NewFlagArgs wraps a parsed flag set.
func NewFlagArgs(flags *pflag.FlagSet) FlagArgs {
	return FlagArgs{flags: flags}
}

// Lookup implements Args. Slice-valued flags are returned as []string.
func (a FlagArgs) Lookup(key string) (any, bool) {
	if a.flags == nil {
		return nil, false
	}
	f := a.flags.Lookup(key)
	if f == nil {
		f = a.flags.Lookup(strings.ReplaceAll(key, "_", "-"))
	}
	if f == nil || !f.Changed {
		return nil, false
	}
	if sv, ok := f.Value.(pflag.SliceValue); ok {
		return sv.GetSlice(), true
	}
	return f.Value.String(), true
}

// ArgChain consults each Args in order and returns the first hit.
type ArgChain []Args

// Lookup implements Args.
func (c ArgChain) Lookup(key string) (any, bool) {
	for _, args := range c {
		if args == nil {
			continue
		}
		if v, ok := args.Lookup(key); ok {
			return v, true
		}
	}
	return nil, false
}

func stringArg(args Args, key string) (string, bool) {
	if args == nil {
		return "", false
	}
	v, ok := args.Lookup(key)
	if !ok {
		return "", false
	}
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}

func stringsArg(args Args, key string) ([]string, bool) {
	if args == nil {
		return nil, false
	}
	v, ok := args.Lookup(key)
	if !ok {
		return nil, false
	}
	switch x := v.(type) {
	case []string:
		return x, true
	case string:
		return []string{x}, true
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
