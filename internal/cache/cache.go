// Package cache stores finished plan comparisons keyed by a fingerprint of
// the plan that produced them.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rpgo/payoff-calculator/internal/calculation"
	"github.com/rpgo/payoff-calculator/internal/domain"
)

// DefaultTTL is how long a cached comparison stays valid.
const DefaultTTL = 24 * time.Hour

const keyPrefix = "payoff:"

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key. A ttl of zero keeps the entry forever.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Fingerprint hashes the canonical JSON form of a plan. Two plans that
// simulate identically share a key.
func Fingerprint(plan *domain.Plan) (string, error) {
	b, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("fingerprint plan: %w", err)
	}
	return fmt.Sprintf("%s%016x", keyPrefix, xxhash.Sum64(b)), nil
}

// ComputeFunc produces a comparison on a cache miss.
type ComputeFunc func(ctx context.Context) (*domain.PlanComparison, error)

// LoadOrCompute returns the comparison cached under key, or runs compute and
// stores its result. Cache failures are logged and never fail the call.
func LoadOrCompute(ctx context.Context, c Cache, key string, compute ComputeFunc, logger calculation.Logger) (*domain.PlanComparison, bool, error) {
	if logger == nil {
		logger = calculation.NopLogger{}
	}

	if data, ok, err := c.Get(ctx, key); err != nil {
		logger.Warnf("cache get %s: %v", key, err)
	} else if ok {
		var cmp domain.PlanComparison
		err := json.Unmarshal(data, &cmp)
		if err == nil {
			logger.Debugf("cache hit %s", key)
			return &cmp, true, nil
		}
		logger.Warnf("cache entry %s unreadable: %v", key, err)
	}

	cmp, err := compute(ctx)
	if err != nil {
		return nil, false, err
	}
	data, err := json.Marshal(cmp)
	if err != nil {
		logger.Warnf("cache encode %s: %v", key, err)
		return cmp, false, nil
	}
	if err := c.Set(ctx, key, data, DefaultTTL); err != nil {
		logger.Warnf("cache set %s: %v", key, err)
	}
	return cmp, false, nil
}
