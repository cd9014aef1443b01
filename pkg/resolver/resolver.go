// Package resolver matches raw species labels to canonical scientific
// names and standardized identifiers.
//
// Each distinct label is parsed to its canonical form and looked up in a
// taxonomic registry through an ordered chain of strategies. The first
// strategy that finds the name wins. Labels that cannot be parsed or
// found stay unresolved, they never stop the batch. Registry transport
// errors are returned to the caller.
//
// After automated resolution a manual override table can force names and
// identifiers for selected records (see ApplyOverrides).
package resolver

import (
	"context"
	"log/slog"
	"strings"
)

// Query is a registry lookup request.
type Query struct {
	// Name is a canonical scientific name without authorship.
	Name string

	// AcceptedOnly restricts matches to currently accepted names.
	AcceptedOnly bool

	// Fuzzy allows approximate matches.
	Fuzzy bool
}

// Match is a tagged registry response. When Found is false the name is
// not known to the registry under the query conditions.
type Match struct {
	Found bool

	// IDs are candidate identifiers in registry order.
	IDs []string
}

// Registry is a taxonomic name registry.
type Registry interface {
	// Lookup searches for a name. Not-found is reported through
	// Match.Found, errors are reserved for transport and decoding
	// failures.
	Lookup(ctx context.Context, q Query) (Match, error)
}

// Parser converts a raw label to its canonical form.
type Parser interface {
	// Canonical returns the canonical form of a name and false if the
	// name cannot be parsed.
	Canonical(name string) (string, bool)
}

// Strategy is one step of the lookup chain.
type Strategy struct {
	AcceptedOnly bool
	Fuzzy        bool

	// Status is assigned to entries resolved by this strategy.
	Status Status
}

// DefaultChain looks for accepted names first and falls back to any name
// known to the registry.
var DefaultChain = []Strategy{
	{AcceptedOnly: true, Fuzzy: true, Status: Accepted},
	{AcceptedOnly: false, Fuzzy: true, Status: NotAccepted},
}

// Resolver resolves species labels against a registry.
type Resolver struct {
	reg      Registry
	prs      Parser
	chain    []Strategy
	progress func()
}

// Option configures a Resolver.
type Option func(*Resolver)

// OptChain replaces the default lookup chain.
func OptChain(chain []Strategy) Option {
	return func(r *Resolver) {
		if len(chain) > 0 {
			r.chain = chain
		}
	}
}

// OptProgress sets a function that is called after each distinct label
// is resolved.
func OptProgress(fn func()) Option {
	return func(r *Resolver) {
		r.progress = fn
	}
}

// New creates a Resolver.
func New(reg Registry, prs Parser, opts ...Option) *Resolver {
	res := &Resolver{
		reg:   reg,
		prs:   prs,
		chain: DefaultChain,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Distinct returns unique labels in order of first appearance.
func Distinct(labels []string) []string {
	seen := make(map[string]struct{})
	var res []string
	for _, v := range labels {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res
}

// Resolve returns exactly one Entry per label, in the same order. Every
// distinct label is looked up once.
func (r *Resolver) Resolve(
	ctx context.Context,
	labels []string,
) ([]Entry, error) {
	uniq := Distinct(labels)
	cache := make(map[string]Entry, len(uniq))
	for _, v := range uniq {
		ent, err := r.ResolveOne(ctx, v)
		if err != nil {
			return nil, err
		}
		cache[v] = ent
		if r.progress != nil {
			r.progress()
		}
	}

	res := make([]Entry, len(labels))
	for i, v := range labels {
		res[i] = cache[v]
	}
	return res, nil
}

// ResolveOne resolves a single label.
func (r *Resolver) ResolveOne(ctx context.Context, label string) (Entry, error) {
	res := Entry{Verbatim: label, Status: Unparsed}

	if strings.TrimSpace(label) == "" {
		return res, nil
	}

	canonical, ok := r.prs.Canonical(label)
	if !ok || canonical == "" {
		slog.Warn("Cannot parse species label", "label", label)
		return res, nil
	}
	res.Canonical = canonical
	res.Status = NotFound

	for _, s := range r.chain {
		q := Query{
			Name:         canonical,
			AcceptedOnly: s.AcceptedOnly,
			Fuzzy:        s.Fuzzy,
		}
		m, err := r.reg.Lookup(ctx, q)
		if err != nil {
			return Entry{}, err
		}
		if !m.Found || len(m.IDs) == 0 {
			continue
		}
		if len(m.IDs) > 1 {
			slog.Debug("Several identifiers found, using the first",
				"name", canonical, "ids", m.IDs)
		}
		res.ID = m.IDs[0]
		res.Status = s.Status
		return res, nil
	}

	slog.Warn("Name not found in registry", "name", canonical)
	return res, nil
}
