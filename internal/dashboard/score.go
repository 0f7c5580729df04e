package dashboard

import "math"

// Tier is the color band of a match score.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierPoor      Tier = "poor"
)

const ringRadius = 45.0

// ScoreCard is the match score header shown above every tab.
type ScoreCard struct {
	Score      int     `json:"score"`
	Tier       Tier    `json:"tier"`
	Label      string  `json:"label"`
	Icon       string  `json:"icon"`
	Radius     float64 `json:"radius"`
	DashArray  float64 `json:"dashArray"`
	DashOffset float64 `json:"dashOffset"`
	Indicators [4]bool `json:"indicators"`
}

var indicatorThresholds = [4]int{25, 50, 75, 90}

// ScoreTier buckets a 0..100 score.
func ScoreTier(score int) Tier {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 70:
		return TierGood
	case score >= 50:
		return TierFair
	default:
		return TierPoor
	}
}

func (t Tier) Label() string {
	switch t {
	case TierExcellent:
		return "Excellent Match"
	case TierGood:
		return "Good Match"
	case TierFair:
		return "Fair Match"
	default:
		return "Needs Improvement"
	}
}

func (t Tier) Icon() string {
	switch t {
	case TierExcellent:
		return "fas fa-trophy"
	case TierGood:
		return "fas fa-thumbs-up"
	case TierFair:
		return "fas fa-balance-scale"
	default:
		return "fas fa-chart-line"
	}
}

// NewScoreCard derives the progress ring and labels for score.
func NewScoreCard(score int) ScoreCard {
	tier := ScoreTier(score)
	circumference := 2 * math.Pi * ringRadius
	card := ScoreCard{
		Score:      score,
		Tier:       tier,
		Label:      tier.Label(),
		Icon:       tier.Icon(),
		Radius:     ringRadius,
		DashArray:  circumference,
		DashOffset: circumference - float64(score)/100*circumference,
	}
	for i, threshold := range indicatorThresholds {
		card.Indicators[i] = score >= threshold
	}
	return card
}

// percent returns round(part/total*100), or 0 when total is 0.
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
