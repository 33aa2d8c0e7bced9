package recommendation

import "time"

// Config holds the scoring tunables. Pool size, recency window and order scan
// depth shipped as fixed constants for a long time; they are configurable now
// because their right values are a product decision.
type Config struct {
	// upper bound on the candidate pool pulled for scoring
	CandidatePoolSize int

	// how fresh a product must be to earn the recency bonus
	RecencyWindow time.Duration

	// how many orders the co-purchase scan inspects
	OrderScanLimit int

	// default result sizes when the caller passes none
	RelatedLimit        int
	BoughtTogetherLimit int
}

const (
	defaultCandidatePoolSize   = 100
	defaultRecencyWindow       = 30 * 24 * time.Hour
	defaultOrderScanLimit      = 50
	defaultRelatedLimit        = 4
	defaultBoughtTogetherLimit = 3
)

func DefaultConfig() Config {
	return Config{
		CandidatePoolSize:   defaultCandidatePoolSize,
		RecencyWindow:       defaultRecencyWindow,
		OrderScanLimit:      defaultOrderScanLimit,
		RelatedLimit:        defaultRelatedLimit,
		BoughtTogetherLimit: defaultBoughtTogetherLimit,
	}
}

// normalize fills zero fields with defaults so a partially built Config
// cannot disable the pool cap or the limits.
func (c Config) normalize() Config {
	d := DefaultConfig()

	if c.CandidatePoolSize <= 0 {
		c.CandidatePoolSize = d.CandidatePoolSize
	}
	if c.RecencyWindow <= 0 {
		c.RecencyWindow = d.RecencyWindow
	}
	if c.OrderScanLimit <= 0 {
		c.OrderScanLimit = d.OrderScanLimit
	}
	if c.RelatedLimit <= 0 {
		c.RelatedLimit = d.RelatedLimit
	}
	if c.BoughtTogetherLimit <= 0 {
		c.BoughtTogetherLimit = d.BoughtTogetherLimit
	}

	return c
}
