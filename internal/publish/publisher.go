// Package publish pushes per-bar snapshots and per-day decisions onto Redis
// PubSub channels for downstream consumers (dashboard gateway, backtest
// bookkeeping). The statistical engine itself never imports this package;
// the scan loop wires the two together.
package publish

import (
	"context"
	"log"

	goredis "github.com/go-redis/redis/v8"

	"pairs-enginev1/internal/model"
)

// DecisionChannel returns the PubSub channel for a pair's admission decisions.
func DecisionChannel(pair model.Pair) string {
	return "pub:decision:" + pair.Key()
}

// SnapshotChannel returns the PubSub channel for a pair's indicator snapshots.
func SnapshotChannel(pair model.Pair) string {
	return "pub:snapshot:" + pair.Key()
}

// Publisher fans evaluation output to Redis. A nil *Publisher or a Publisher
// without a client is a no-op, so the scan loop can run without Redis.
type Publisher struct {
	rdb *goredis.Client
}

// New returns a Publisher backed by rdb (may be nil).
func New(rdb *goredis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Decision publishes an admission decision to the pair's decision channel.
func (p *Publisher) Decision(ctx context.Context, pair model.Pair, d *model.AdmissionDecision) {
	if p == nil || p.rdb == nil {
		return
	}
	if err := p.rdb.Publish(ctx, DecisionChannel(pair), d.JSON()).Err(); err != nil {
		log.Printf("[publish] decision publish failed: %v", err)
	}
}

// Snapshot publishes an indicator snapshot to the pair's snapshot channel.
func (p *Publisher) Snapshot(ctx context.Context, pair model.Pair, s model.IndicatorSnapshot) {
	if p == nil || p.rdb == nil {
		return
	}
	payload, err := s.MarshalJSON()
	if err != nil {
		log.Printf("[publish] snapshot marshal failed: %v", err)
		return
	}
	if err := p.rdb.Publish(ctx, SnapshotChannel(pair), payload).Err(); err != nil {
		log.Printf("[publish] snapshot publish failed: %v", err)
	}
}
