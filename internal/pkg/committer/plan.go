// Package committer batches Spanner mutations and applies them in one
// read-write transaction.
package committer

import "cloud.google.com/go/spanner"

// Plan is an ordered batch of mutations. The zero value and a nil *Plan are
// both valid empty plans.
type Plan struct {
	muts []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{}
}

// Add appends ms in order, skipping nils (a repo returns nil when a row needs no write).
func (p *Plan) Add(ms ...*spanner.Mutation) {
	for _, m := range ms {
		if m != nil {
			p.muts = append(p.muts, m)
		}
	}
}

func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.muts)
}

func (p *Plan) IsEmpty() bool { return p.Len() == 0 }

// Mutations returns the batch as passed to BufferWrite.
func (p *Plan) Mutations() []*spanner.Mutation {
	if p == nil {
		return nil
	}
	return p.muts
}
