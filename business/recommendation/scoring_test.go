package recommendation

import (
	"testing"
	"time"

	"clovermarket/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var scoringNow = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

func refProduct() domain.Product {
	return domain.Product{
		ID:       1,
		Name:     "Trail Runner",
		Price:    decimal.NewFromInt(100),
		Category: "Shoes",
		Brand:    "Acme",
		Colors:   []string{"red", "blue", "black"},
		Stock:    10,
		Status:   domain.ProductStatusActive,
	}
}

func TestScoreCandidate_FullMatch(t *testing.T) {
	ref := refProduct()
	candidate := domain.Product{
		ID:        2,
		Price:     decimal.NewFromInt(125), // ratio 0.25 -> +20
		Category:  "Shoes",                 // +40
		Brand:     "Acme",                  // +15
		Colors:    []string{"red", "blue"}, // 2 overlap -> +10
		Stock:     3,                       // +5
		CreatedAt: scoringNow.Add(-24 * time.Hour), // +5
	}

	score := scoreCandidate(ref, candidate, scoringNow, defaultRecencyWindow)

	assert.Equal(t, 95.0, score)
}

func TestScoreCandidate_PriceProximityTiers(t *testing.T) {
	ref := refProduct()
	old := scoringNow.Add(-90 * 24 * time.Hour)

	cases := []struct {
		price int64
		want  float64
	}{
		{100, weightPriceNear}, // ratio 0
		{130, weightPriceNear}, // 0.30 inclusive
		{150, weightPriceMid},  // 0.50 inclusive
		{170, weightPriceFar},  // 0.70 inclusive
		{171, 0},
		{50, weightPriceMid}, // cheaper candidates count too
		{30, weightPriceFar}, // ratio 0.70 inclusive
	}

	for _, tc := range cases {
		candidate := domain.Product{ID: 2, Price: decimal.NewFromInt(tc.price), CreatedAt: old}
		got := priceProximity(ref, candidate)
		assert.Equal(t, tc.want, got, "price=%d", tc.price)
	}
}

func TestScoreCandidate_ZeroReferencePrice(t *testing.T) {
	ref := refProduct()
	ref.Price = decimal.Zero

	candidate := domain.Product{ID: 2, Price: decimal.NewFromInt(500)}

	assert.NotPanics(t, func() {
		assert.Equal(t, 0.0, priceProximity(ref, candidate))
	})
}

func TestScoreCandidate_ColorOverlapCapped(t *testing.T) {
	ref := refProduct()
	ref.Colors = []string{"red", "blue", "black", "green", "white"}

	candidate := domain.Product{
		ID:        2,
		Price:     decimal.NewFromInt(1000), // no price term
		Colors:    []string{"red", "blue", "black", "green", "white"},
		CreatedAt: scoringNow.Add(-90 * 24 * time.Hour),
	}

	// 5 shared colors would be 25; contribution caps at 15
	score := scoreCandidate(ref, candidate, scoringNow, defaultRecencyWindow)
	assert.Equal(t, weightColorCap, score)
}

func TestScoreCandidate_MissingOptionalFields(t *testing.T) {
	ref := domain.Product{ID: 1, Price: decimal.NewFromInt(50)}
	candidate := domain.Product{ID: 2, Price: decimal.NewFromInt(50), Stock: 1, CreatedAt: scoringNow.Add(-365 * 24 * time.Hour)}

	// empty category/brand/colors never match; price + stock only
	score := scoreCandidate(ref, candidate, scoringNow, defaultRecencyWindow)
	assert.Equal(t, weightPriceNear+weightStock, score)
}

func TestRank_ExcludesReferenceAndNonPositive(t *testing.T) {
	ref := refProduct()

	pool := []domain.Product{
		ref, // same identity, must be skipped
		{ID: 2, Price: decimal.NewFromInt(1000), CreatedAt: scoringNow.Add(-90 * 24 * time.Hour)}, // scores 0
		{ID: 3, Price: decimal.NewFromInt(110), Category: "Shoes", Stock: 1, CreatedAt: scoringNow.Add(-90 * 24 * time.Hour)},
	}

	ranked := rank(ref, pool, 10, scoringNow, defaultRecencyWindow)

	assert.Len(t, ranked, 1)
	assert.Equal(t, uint64(3), ranked[0].ID)
}

func TestRank_StableTiesKeepPoolOrder(t *testing.T) {
	ref := refProduct()
	old := scoringNow.Add(-90 * 24 * time.Hour)

	// identical candidates except identity: identical scores
	pool := []domain.Product{
		{ID: 5, Price: decimal.NewFromInt(100), Category: "Shoes", CreatedAt: old},
		{ID: 2, Price: decimal.NewFromInt(100), Category: "Shoes", CreatedAt: old},
		{ID: 9, Price: decimal.NewFromInt(100), Category: "Shoes", CreatedAt: old},
	}

	ranked := rank(ref, pool, 10, scoringNow, defaultRecencyWindow)

	assert.Equal(t, []uint64{5, 2, 9}, []uint64{ranked[0].ID, ranked[1].ID, ranked[2].ID})
}

func TestRank_TruncatesToLimit(t *testing.T) {
	ref := refProduct()

	pool := make([]domain.Product, 0, 20)
	for i := 2; i < 22; i++ {
		pool = append(pool, domain.Product{
			ID:       uint64(i),
			Price:    decimal.NewFromInt(100),
			Category: "Shoes",
		})
	}

	ranked := rank(ref, pool, 4, scoringNow, defaultRecencyWindow)
	assert.Len(t, ranked, 4)
}
