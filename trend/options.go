package trend

import "strings"

// ============================================================================
// OPTIONS — Functional options for ComputeGrowthRate
// ============================================================================

// Option configures growth-rate computation.
type Option func(*config)

type config struct {
	tags map[string]bool // nil = all tags
}

// WithTags restricts growth-rate computation to the named tags.
// Matching is case-insensitive. No tags means no restriction.
func WithTags(tags ...string) Option {
	return func(c *config) {
		if len(tags) == 0 {
			return
		}
		if c.tags == nil {
			c.tags = make(map[string]bool, len(tags))
		}
		for _, t := range tags {
			c.tags[strings.ToLower(t)] = true
		}
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *config) wants(tag string) bool {
	if c.tags == nil {
		return true
	}
	return c.tags[strings.ToLower(tag)]
}
