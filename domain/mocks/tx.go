package mocks

import (
	"context"
)

// Transactor runs fn directly and reports how many transactions were opened.
// Tests that need a failing boundary set Err.
type Transactor struct {
	Calls int
	Err   error
}

func (t *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	if t.Err != nil {
		return t.Err
	}
	return fn(ctx)
}

// IDGenerator hands out Next, Next+1, ... in call order.
type IDGenerator struct {
	Next int64
}

func (g *IDGenerator) NextID() int64 {
	id := g.Next
	g.Next++
	return id
}
