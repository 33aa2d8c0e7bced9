package recommendation

import (
	"math"
	"sort"
	"time"

	"clovermarket/domain"
)

// Heuristic weights; the maximum attainable score is 100.
const (
	weightCategory  = 40.0
	weightPriceNear = 20.0
	weightPriceMid  = 15.0
	weightPriceFar  = 10.0
	weightBrand     = 15.0
	weightPerColor  = 5.0
	weightColorCap  = 15.0
	weightRecency   = 5.0
	weightStock     = 5.0
)

type scoredCandidate struct {
	product domain.Product
	score   float64
}

// scoreCandidate is a pure function of the reference, the candidate and the
// evaluation time; it never mutates either product.
func scoreCandidate(ref, candidate domain.Product, now time.Time, recencyWindow time.Duration) float64 {
	var score float64

	if ref.Category != "" && ref.Category == candidate.Category {
		score += weightCategory
	}

	score += priceProximity(ref, candidate)

	if ref.Brand != "" && candidate.Brand != "" && ref.Brand == candidate.Brand {
		score += weightBrand
	}

	score += math.Min(float64(colorOverlap(ref, candidate))*weightPerColor, weightColorCap)

	if candidate.CreatedAt.After(now.Add(-recencyWindow)) {
		score += weightRecency
	}

	if candidate.Stock > 0 {
		score += weightStock
	}

	return score
}

// priceProximity rewards candidates priced close to the reference. Prices are
// stored as fixed-point decimals; the float conversion stays inside this
// relative-difference approximation and never crosses a boundary. A zero or
// negative reference price contributes nothing rather than dividing by zero.
func priceProximity(ref, candidate domain.Product) float64 {
	refPrice, _ := ref.Price.Float64()
	if refPrice <= 0 {
		return 0
	}

	candidatePrice, _ := candidate.Price.Float64()
	ratio := math.Abs(candidatePrice-refPrice) / refPrice

	switch {
	case ratio <= 0.30:
		return weightPriceNear
	case ratio <= 0.50:
		return weightPriceMid
	case ratio <= 0.70:
		return weightPriceFar
	default:
		return 0
	}
}

func colorOverlap(ref, candidate domain.Product) int {
	if len(ref.Colors) == 0 || len(candidate.Colors) == 0 {
		return 0
	}

	refColors := make(map[string]struct{}, len(ref.Colors))
	for _, c := range ref.Colors {
		refColors[c] = struct{}{}
	}

	overlap := 0
	for _, c := range candidate.Colors {
		if _, ok := refColors[c]; ok {
			overlap++
			delete(refColors, c)
		}
	}

	return overlap
}

// rank scores the pool against the reference, drops non-positive scores,
// sorts descending and truncates. The sort is stable so ties keep the pool's
// own order.
func rank(ref domain.Product, pool []domain.Product, limit int, now time.Time, recencyWindow time.Duration) []domain.Product {
	scored := make([]scoredCandidate, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == ref.ID {
			continue
		}

		score := scoreCandidate(ref, candidate, now, recencyWindow)
		if score <= 0 {
			continue
		}

		scored = append(scored, scoredCandidate{product: candidate, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}

	products := make([]domain.Product, 0, len(scored))
	for _, sc := range scored {
		products = append(products, sc.product)
	}

	return products
}
