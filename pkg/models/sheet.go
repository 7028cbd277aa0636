package models

import "time"

// SubmissionHeaders is the versioned header row of the submissions log
// tab. Row builders below pair every header with its value so headers
// and cells cannot drift apart.
var SubmissionHeaders = []string{
	"Timestamp", "Full Name", "Email", "Phone", "Company", "Job Title",
	"Website", "Referral Source", "LinkedIn URL", "LinkedIn Email",
	"LinkedIn Password", "Account Age", "Connection Count",
	"Account Classification", "2FA Method", "2FA Contact",
	"Account Status", "Primary Goal", "Audience Category",
	"Ethnic Community", "Ethnic Geographic", "Language Preferences",
	"Religious Affiliation", "Community Orgs", "Primary Industry",
	"Secondary Industry", "Industry Keywords", "Niche Specialization",
	"Target Job Titles", "Geographic Focus", "Company Size Preference",
	"Seniority Level", "Current Headline", "Current About",
	"Key Accomplishments", "Value Proposition", "Profile Assets",
	"Recommendation Count", "Licenses", "Profile Notes",
	"Content Approval", "Posts Per Week", "Content Themes",
	"Weekend Activity", "Working Hours", "Messaging Approval",
	"Campaign Notes", "Agree Terms", "Agree Contract",
	"Signature Name", "Signature Date", "Status", "Submission ID",
}

// DirectoryHeaders is the versioned header row of the client directory
// tab.
var DirectoryHeaders = []string{
	"Agent Name", "Phone Number", "Date of Birth", "Email",
	"LinkedIn Email", "LinkedIn Password", "Gmail Access",
	"Gmail Password", "Gmail Recovery", "Location",
	"Account Type", "Tier", "Subscription Level",
	"Verification Status", "Status", "Date Added",
}

// SubmissionRow shapes one submissions-log row. The slice order matches
// SubmissionHeaders exactly.
func SubmissionRow(s Submission, id string, now time.Time) []interface{} {
	return []interface{}{
		now.Format("1/2/2006, 3:04:05 PM"),
		s.FullName, s.Email, s.Phone, s.CompanyName, s.JobTitle,
		s.Website, s.ReferralSource, s.LinkedInURL, s.LinkedInEmail,
		s.LinkedInPassword, s.AccountAge, s.ConnectionCount,
		s.AccountClassification, s.TwoFactorMethod, s.TwoFactorContact,
		s.AccountStatus, s.PrimaryGoal, s.AudienceCategory,
		s.EthnicCommunity, s.EthnicGeographic, s.LanguagePreferences,
		s.ReligiousAffiliation, s.CommunityOrgs, s.PrimaryIndustry,
		s.SecondaryIndustry, s.IndustryKeywords, s.NicheSpecialization,
		s.TargetJobTitles, s.GeographicFocus, s.CompanySizePreference,
		s.SeniorityLevel, s.CurrentHeadline, s.CurrentAbout,
		s.KeyAccomplishments, s.ValueProposition, s.ProfileAssets,
		s.RecommendationCount, s.Licenses, s.ProfileNotes,
		s.ContentApproval, s.PostsPerWeek, s.ContentThemes,
		s.WeekendActivity, s.PreferredWorkingHours, s.MessagingApproval,
		s.CampaignNotes, s.AgreeTerms, s.AgreeContract,
		s.SignatureName, s.SignatureDate, SubmissionStatusNew, id,
	}
}

// DirectoryRow shapes one client-directory row from the subset of
// identity and account fields the directory tracks. The slice order
// matches DirectoryHeaders exactly.
func DirectoryRow(s Submission, now time.Time) []interface{} {
	return []interface{}{
		s.FullName,              // Agent Name
		s.Phone,                 // Phone Number
		"",                      // Date of Birth
		s.Email,                 // Email
		s.LinkedInEmail,         // LinkedIn Email
		s.LinkedInPassword,      // LinkedIn Password
		"",                      // Gmail Access
		"",                      // Gmail Password
		"",                      // Gmail Recovery
		s.GeographicFocus,       // Location
		s.AccountClassification, // Account Type
		"",                      // Tier
		"",                      // Subscription Level
		s.AccountStatus,         // Verification Status
		DirectoryStatusNew,      // Status
		now.Format("1/2/2006"),  // Date Added
	}
}
