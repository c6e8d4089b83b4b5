package service

import "strings"

// educationPairs lists the complementary education pairings worth the top
// bonus. Lookup is case-insensitive and order-independent.
var educationPairs = [][2]string{
	{"engineer", "medical"},
	{"doctor", "engineer"},
	{"lawyer", "doctor"},
}

type ScoreInput struct {
	YourName           string
	CrushName          string
	YourAge            int
	CrushAge           int
	YourEducation      string
	CrushEducation     string
	RelationshipMonths int
	RelationshipDays   int
}

// CompatibilityScore computes the love percentage for a submission. The
// function is pure and deterministic; the result is always in [1,100].
func CompatibilityScore(in ScoreInput) int {
	score := 50

	switch {
	case strings.EqualFold(in.YourName, in.CrushName):
		score += 30
	case len(in.YourName) > 0 && len(in.CrushName) > 0 && in.YourName[0] == in.CrushName[0]:
		score += 10
	}

	ageDiff := in.YourAge - in.CrushAge
	if ageDiff < 0 {
		ageDiff = -ageDiff
	}
	switch {
	case ageDiff <= 2:
		score += 20
	case ageDiff <= 5:
		score += 10
	case ageDiff <= 10:
		score += 5
	}

	switch {
	case isComplementaryPair(in.YourEducation, in.CrushEducation):
		score += 15
	case in.YourEducation == in.CrushEducation:
		score += 10
	default:
		score += 5
	}

	// Days only shift the duration bucket, they never add fractional score.
	totalMonths := float64(in.RelationshipMonths) + float64(in.RelationshipDays)/30
	switch {
	case totalMonths > 24:
		score += 40
	case totalMonths > 18:
		score += 30
	case totalMonths > 12:
		score += 25
	case totalMonths > 9:
		score += 20
	case totalMonths > 6:
		score += 15
	case totalMonths > 3:
		score += 10
	case totalMonths > 1:
		score += 5
	}

	if score < 1 {
		return 1
	}
	if score > 100 {
		return 100
	}

	return score
}

func isComplementaryPair(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	for _, pair := range educationPairs {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}

	return false
}
