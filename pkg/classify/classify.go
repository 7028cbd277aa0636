// Package classify derives the account activity tier from the
// connection-count and account-age buckets reported on the form.
package classify

import "onboarding-backend/pkg/models"

// Tier is the derived risk/activity classification for one account.
type Tier struct {
	Label      string
	DailyLimit int
	Risk       string
	// Display is the literal string persisted with the submission and
	// shown in emails and the dashboard.
	Display string
}

var (
	TierMature = Tier{
		Label:      "OLD/MATURE",
		DailyLimit: 150,
		Risk:       "Low Risk",
		Display:    "OLD/MATURE - 150 actions/day - Low Risk",
	}
	TierMedium = Tier{
		Label:      "MEDIUM",
		DailyLimit: 80,
		Risk:       "Medium Risk",
		Display:    "MEDIUM - 80 actions/day - Medium Risk",
	}
	TierNew = Tier{
		Label:      "NEW",
		DailyLimit: 80,
		Risk:       "High Risk",
		Display:    "NEW - 80 actions/day (conservative) - High Risk",
	}
)

// Account classifies a (connection bucket, age bucket) pair. The
// function is total: every pair maps to exactly one tier, and the
// branches are ordered so the mature check claims its inputs before the
// medium check can.
func Account(connections, age string) Tier {
	if connections == models.Connections5000Plus && age == models.Age3PlusYears {
		return TierMature
	}
	if (connections == models.Connections1000To2999 || connections == models.Connections3000To4999) &&
		(age == models.Age1To3Years || age == models.Age3PlusYears) {
		return TierMedium
	}
	return TierNew
}
