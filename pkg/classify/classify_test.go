package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"onboarding-backend/pkg/models"
)

var allConnections = []string{
	models.ConnectionsUnder1000,
	models.Connections1000To2999,
	models.Connections3000To4999,
	models.Connections5000Plus,
}

var allAges = []string{
	models.AgeUnder1Year,
	models.Age1To3Years,
	models.Age3PlusYears,
}

func TestAccountTotality(t *testing.T) {
	known := map[string]bool{
		TierMature.Display: true,
		TierMedium.Display: true,
		TierNew.Display:    true,
	}
	for _, conns := range allConnections {
		for _, age := range allAges {
			tier := Account(conns, age)
			assert.True(t, known[tier.Display], "unknown tier %q for (%s, %s)", tier.Display, conns, age)
		}
	}
}

func TestAccountMatureOnlyAtMaximalValues(t *testing.T) {
	for _, conns := range allConnections {
		for _, age := range allAges {
			tier := Account(conns, age)
			maximal := conns == models.Connections5000Plus && age == models.Age3PlusYears
			assert.Equal(t, maximal, tier == TierMature,
				"(%s, %s) mature=%v", conns, age, tier == TierMature)
		}
	}
}

func TestAccountBranchOrdering(t *testing.T) {
	tests := []struct {
		name        string
		connections string
		age         string
		want        Tier
	}{
		{"maximal pair is mature", models.Connections5000Plus, models.Age3PlusYears, TierMature},
		{"5000 plus but younger account is not medium-claimed", models.Connections5000Plus, models.Age1To3Years, TierNew},
		{"high-mid connections with mature age stays medium", models.Connections3000To4999, models.Age3PlusYears, TierMedium},
		{"mid connections with mid age", models.Connections1000To2999, models.Age1To3Years, TierMedium},
		{"low connections always new", models.ConnectionsUnder1000, models.Age3PlusYears, TierNew},
		{"young account always new", models.Connections1000To2999, models.AgeUnder1Year, TierNew},
		{"unknown input falls through to new", "", "", TierNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Account(tt.connections, tt.age))
		})
	}
}

func TestTierDisplayLiterals(t *testing.T) {
	assert.Equal(t, "OLD/MATURE - 150 actions/day - Low Risk", TierMature.Display)
	assert.Equal(t, "MEDIUM - 80 actions/day - Medium Risk", TierMedium.Display)
	assert.Equal(t, "NEW - 80 actions/day (conservative) - High Risk", TierNew.Display)
}
