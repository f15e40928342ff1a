package service

import (
	"math"
	"strings"

	"github.com/devcraft/portfolio-api/internal/dto"
)

// Tier is a price/duration baseline for a project type or feature.
type Tier struct {
	Price int
	Days  int
}

// RateCard holds every table the estimator consults. The values are business
// configuration; the fallback-on-unknown-key behaviour is not.
type RateCard struct {
	Projects    map[string]Tier
	Features    map[string]Tier
	DefaultTier Tier

	// TimelinePrice scales price; TimelineDays scales duration. The two are
	// deliberately independent: an urgent job costs more (1.5x) yet ships
	// faster (0.7x), which is a business rule, not an inversion of the
	// price multiplier.
	TimelinePrice map[string]float64
	TimelineDays  map[string]float64

	// Complexity scales price and days identically.
	Complexity map[string]float64
}

// DefaultRateCard returns the published price book.
func DefaultRateCard() RateCard {
	return RateCard{
		Projects: map[string]Tier{
			"landing":   {Price: 15000, Days: 5},
			"webapp":    {Price: 50000, Days: 21},
			"ecommerce": {Price: 75000, Days: 30},
			"saas":      {Price: 100000, Days: 45},
			"custom":    {Price: 40000, Days: 20},
		},
		Features: map[string]Tier{
			"auth":     {Price: 10000, Days: 3},
			"payments": {Price: 15000, Days: 4},
			"ai":       {Price: 25000, Days: 7},
			"realtime": {Price: 20000, Days: 5},
			"admin":    {Price: 20000, Days: 6},
			"api":      {Price: 12000, Days: 4},
		},
		DefaultTier: Tier{Price: 40000, Days: 20},
		TimelinePrice: map[string]float64{
			"urgent":   1.5,
			"normal":   1,
			"flexible": 0.9,
		},
		TimelineDays: map[string]float64{
			"urgent":   0.7,
			"normal":   1,
			"flexible": 1.2,
		},
		Complexity: map[string]float64{
			"simple":  0.8,
			"medium":  1,
			"complex": 1.4,
		},
	}
}

// Estimator computes project quotes from a rate card. It is a pure function
// of its input: no state, no side effects, no failure path. Unknown project
// types fall back to the default tier, unknown features contribute nothing,
// and unknown timeline/complexity values degrade to a neutral multiplier.
type Estimator struct {
	card RateCard
}

// NewEstimator builds an estimator over the default rate card.
func NewEstimator() *Estimator {
	return NewEstimatorWithCard(DefaultRateCard())
}

// NewEstimatorWithCard builds an estimator over a custom rate card.
func NewEstimatorWithCard(card RateCard) *Estimator {
	return &Estimator{card: card}
}

// Estimate maps a project configuration to a price/time quote.
func (e *Estimator) Estimate(req dto.EstimateRequest) dto.EstimateResult {
	base, ok := e.card.Projects[req.ProjectType]
	if !ok {
		base = e.card.DefaultTier
	}

	price := base.Price
	days := base.Days

	// Features are a set: a feature requested twice is counted once.
	seen := make(map[string]struct{}, len(req.Features))
	for _, id := range req.Features {
		id = strings.TrimSpace(id)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if feature, known := e.card.Features[id]; known {
			price += feature.Price
			days += feature.Days
		}
	}

	priceMult := multiplierOrNeutral(e.card.TimelinePrice, req.Timeline)
	daysMult := multiplierOrNeutral(e.card.TimelineDays, req.Timeline)
	complexityMult := multiplierOrNeutral(e.card.Complexity, req.Complexity)

	features := req.Features
	if features == nil {
		features = []string{}
	}

	return dto.EstimateResult{
		Price: int(math.Round(float64(price) * priceMult * complexityMult)),
		Days:  int(math.Round(float64(days) * daysMult * complexityMult)),
		Breakdown: dto.EstimateBreakdown{
			BaseProject: req.ProjectType,
			Features:    features,
			Timeline:    req.Timeline,
			Complexity:  req.Complexity,
		},
	}
}

func multiplierOrNeutral(table map[string]float64, key string) float64 {
	if mult, ok := table[key]; ok {
		return mult
	}
	return 1
}
