package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"
)

// ErrNoClient is returned when a non-empty plan is applied without a Spanner client.
var ErrNoClient = errors.New("committer: spanner client is nil")

// Option configures an Adapter.
type Option func(*Adapter)

// WithTransactionTag tags every commit, which shows up in Spanner query stats.
func WithTransactionTag(tag string) Option {
	return func(a *Adapter) { a.tag = tag }
}

// WithLogger logs each commit at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// Adapter is the Spanner implementation of contracts.Committer.
type Adapter struct {
	client *spanner.Client
	tag    string
	logger *zap.Logger
}

func NewAdapter(client *spanner.Client, opts ...Option) *Adapter {
	a := &Adapter{client: client, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply writes the whole plan in a single read-write transaction. An empty plan
// never touches Spanner.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	n := plan.Len()
	if n == 0 {
		return nil
	}
	if a.client == nil {
		return ErrNoClient
	}

	resp, err := a.client.ReadWriteTransactionWithOptions(ctx,
		func(_ context.Context, tx *spanner.ReadWriteTransaction) error {
			return tx.BufferWrite(plan.Mutations())
		},
		spanner.TransactionOptions{TransactionTag: a.tag},
	)
	if err != nil {
		a.logger.Warn("commit failed", zap.Int("mutations", n), zap.String("tag", a.tag), zap.Error(err))
		return fmt.Errorf("committer: apply %d mutations: %w", n, err)
	}

	a.logger.Debug("plan committed",
		zap.Int("mutations", n),
		zap.String("tag", a.tag),
		zap.Time("commit_ts", resp.CommitTs),
	)
	return nil
}
