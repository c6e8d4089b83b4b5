package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompatibilityScore_Buckets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   ScoreInput
		want int
	}{
		{
			name: "everything matches caps at 100",
			in: ScoreInput{
				YourName: "Alex", CrushName: "Alex",
				YourAge: 25, CrushAge: 25,
				YourEducation: "Engineer", CrushEducation: "Medical",
				RelationshipMonths: 30,
			},
			// 50+30+20+15+40 exceeds the cap
			want: 100,
		},
		{
			name: "nothing matches",
			in: ScoreInput{
				YourName: "Anna", CrushName: "Boris",
				YourAge: 25, CrushAge: 40,
				YourEducation: "abc", CrushEducation: "xyz",
			},
			want: 55,
		},
		{
			name: "same name is case-insensitive",
			in: ScoreInput{
				YourName: "alex", CrushName: "ALEX",
				YourAge: 20, CrushAge: 40,
				YourEducation: "a", CrushEducation: "b",
			},
			want: 85,
		},
		{
			name: "first letter bonus is case-sensitive",
			in: ScoreInput{
				YourName: "Anna", CrushName: "Andy",
				YourAge: 20, CrushAge: 40,
				YourEducation: "a", CrushEducation: "b",
			},
			want: 65,
		},
		{
			name: "lowercase vs uppercase first letter gets nothing",
			in: ScoreInput{
				YourName: "anna", CrushName: "Andy",
				YourAge: 20, CrushAge: 40,
				YourEducation: "a", CrushEducation: "b",
			},
			want: 55,
		},
		{
			name: "identical education is exact-match only",
			in: ScoreInput{
				YourName: "Anna", CrushName: "Boris",
				YourAge: 20, CrushAge: 40,
				YourEducation: "Engineer", CrushEducation: "Engineer",
			},
			want: 60,
		},
		{
			name: "education case mismatch falls back to the default bonus",
			in: ScoreInput{
				YourName: "Anna", CrushName: "Boris",
				YourAge: 20, CrushAge: 40,
				YourEducation: "engineer", CrushEducation: "Engineer",
			},
			want: 55,
		},
		{
			name: "complementary pair is case-insensitive and order-independent",
			in: ScoreInput{
				YourName: "Anna", CrushName: "Boris",
				YourAge: 20, CrushAge: 40,
				YourEducation: "LAWYER", CrushEducation: "Doctor",
			},
			want: 65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, CompatibilityScore(tt.in))
		})
	}
}

func TestCompatibilityScore_AgeTiers(t *testing.T) {
	t.Parallel()

	// Fixed remainder: names mismatch (+0), education default (+5), no duration.
	base := ScoreInput{
		YourName: "Anna", CrushName: "Boris",
		YourEducation: "a", CrushEducation: "b",
	}

	tests := []struct {
		yourAge, crushAge int
		want              int
	}{
		{25, 25, 75},
		{25, 27, 75},
		{27, 25, 75},
		{25, 28, 65},
		{25, 30, 65},
		{25, 31, 60},
		{25, 35, 60},
		{25, 36, 55},
	}

	for _, tt := range tests {
		in := base
		in.YourAge, in.CrushAge = tt.yourAge, tt.crushAge
		require.Equalf(t, tt.want, CompatibilityScore(in), "ages %d/%d", tt.yourAge, tt.crushAge)
	}
}

func TestCompatibilityScore_DurationTiers(t *testing.T) {
	t.Parallel()

	base := ScoreInput{
		YourName: "Anna", CrushName: "Boris",
		YourAge: 20, CrushAge: 40,
		YourEducation: "a", CrushEducation: "b",
	}

	tests := []struct {
		months, days int
		want         int
	}{
		{0, 0, 55},
		{1, 0, 55},
		{1, 1, 60}, // days push the total over the 1 month boundary
		{3, 0, 60},
		{4, 0, 65},
		{6, 0, 65},
		{7, 0, 70},
		{9, 0, 70},
		{10, 0, 75},
		{12, 0, 75},
		{13, 0, 80},
		{18, 0, 80},
		{19, 0, 85},
		{24, 0, 85},
		{23, 31, 95}, // 23 + 31/30 months is past the 24 month boundary
		{25, 0, 95},
	}

	for _, tt := range tests {
		in := base
		in.RelationshipMonths, in.RelationshipDays = tt.months, tt.days
		require.Equalf(t, tt.want, CompatibilityScore(in), "duration %dm %dd", tt.months, tt.days)
	}
}

func TestCompatibilityScore_Deterministic(t *testing.T) {
	t.Parallel()

	in := ScoreInput{
		YourName: "Maria", CrushName: "Marta",
		YourAge: 30, CrushAge: 33,
		YourEducation: "doctor", CrushEducation: "engineer",
		RelationshipMonths: 7, RelationshipDays: 12,
	}

	first := CompatibilityScore(in)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, CompatibilityScore(in))
	}

	require.GreaterOrEqual(t, first, 1)
	require.LessOrEqual(t, first, 100)
}
