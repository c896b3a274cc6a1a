// Package metadata computes default metadata values for new bundles.
//
// Defaults combine the field's type, the bundle type and the raw command-line
// arguments, so they live here rather than with the bundle types. Lookup
// order for a field is: a rule registered for its key, then a value derived
// from its type.
package metadata

import (
	"github.com/irjudson/codalab-cli/internal"
)

// Metadata keys with built-in rules or catalog entries.
const (
	KeyName          = "name"
	KeyDescription   = "description"
	KeyTags          = "tags"
	KeyArchitectures = "architectures"
)

// Rule computes the default for one field. Rules must not fail; a missing
// argument means falling through to a weaker default.
type Rule func(bt BundleType, args Args) any

// Resolver holds the per-field rules.
type Resolver struct {
	rules     map[string]Rule
	normalize func(path string) string
	machine   func() string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPathNormalizer replaces the function used to absolutize paths.
func WithPathNormalizer(fn func(string) string) Option {
	return func(r *Resolver) {
		r.normalize = fn
	}
}

// WithMachine replaces the host architecture lookup. An empty result means
// unknown.
func WithMachine(fn func() string) Option {
	return func(r *Resolver) {
		r.machine = fn
	}
}

// NewResolver returns a resolver with the name, description and
// architectures rules registered.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		rules:     make(map[string]Rule),
		normalize: internal.NormalizePath,
		machine:   HostMachine,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.Register(KeyName, r.defaultName)
	r.Register(KeyDescription, r.defaultDescription)
	r.Register(KeyArchitectures, r.defaultArchitectures)
	return r
}

// Register installs rule for key, replacing any existing rule.
func (r *Resolver) Register(key string, rule Rule) {
	r.rules[key] = rule
}

// HasRule reports whether key has a registered rule.
func (r *Resolver) HasRule(key string) bool {
	_, ok := r.rules[key]
	return ok
}

// Default returns the default value for spec when creating a bundle of type
// bt from args.
//
// Without a registered rule the value comes from spec.New: set values are
// returned as a sorted []string, and every other type yields an empty
// []string. The latter discards the constructed zero value; existing clients
// depend on receiving a sequence here.
func (r *Resolver) Default(spec Spec, bt BundleType, args Args) any {
	if rule, ok := r.rules[spec.Key]; ok {
		return rule(bt, args)
	}
	if spec.New != nil {
		if set, ok := spec.New().(Set); ok {
			return set.Slice()
		}
	}
	return []string{}
}

// FillMissing sets the default for every spec whose key is absent from md
// and returns md. A nil md is allocated.
func (r *Resolver) FillMissing(specs []Spec, bt BundleType, args Args, md map[string]any) map[string]any {
	if md == nil {
		md = make(map[string]any, len(specs))
	}
	for _, spec := range specs {
		if _, ok := md[spec.Key]; ok {
			continue
		}
		md[spec.Key] = r.Default(spec, bt, args)
		internal.LogDebug("default %s.%s = %v", bt.Name, spec.Key, md[spec.Key])
	}
	return md
}
