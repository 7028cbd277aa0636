package models

// Account age buckets reported on step 2 of the form.
const (
	AgeUnder1Year = "under_1_year"
	Age1To3Years  = "1_to_3_years"
	Age3PlusYears = "3_plus_years"
)

// Connection count buckets reported on step 2 of the form.
const (
	ConnectionsUnder1000  = "under_1000"
	Connections1000To2999 = "1000_to_2999"
	Connections3000To4999 = "3000_to_4999"
	Connections5000Plus   = "5000_plus"
)

// Primary goal options.
const (
	GoalGrowNetwork = "grow_network"
	GoalGetBusiness = "get_business"
)

// Two-factor method indicating no second factor on the account.
const TwoFactorNone = "none"

// Status literals written to the two sheet tabs on submission.
const (
	SubmissionStatusNew = "New - Pending Review"
	DirectoryStatusNew  = "New - Onboarded"
)

// Submission is the flat mapping produced by the onboarding form.
// AccountClassification is derived server-side and never trusted from
// the caller.
type Submission struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	CompanyName    string `json:"companyName" validate:"required"`
	JobTitle       string `json:"jobTitle" validate:"required"`
	Website        string `json:"website" validate:"omitempty,url"`
	ReferralSource string `json:"referralSource"`

	LinkedInURL           string `json:"linkedinUrl" validate:"required"`
	LinkedInEmail         string `json:"linkedinEmail" validate:"required,email"`
	LinkedInPassword      string `json:"linkedinPassword" validate:"required"`
	AccountAge            string `json:"accountAge" validate:"required,oneof=under_1_year 1_to_3_years 3_plus_years"`
	ConnectionCount       string `json:"connectionCount" validate:"required,oneof=under_1000 1000_to_2999 3000_to_4999 5000_plus"`
	AccountClassification string `json:"accountClassification"`
	TwoFactorMethod       string `json:"twoFactorMethod" validate:"required,oneof=none sms email authenticator_app"`
	TwoFactorContact      string `json:"twoFactorContact" validate:"required_unless=TwoFactorMethod none"`
	AccountStatus         string `json:"accountStatus"`

	PrimaryGoal           string `json:"primaryGoal" validate:"required,oneof=grow_network get_business"`
	AudienceCategory      string `json:"audienceCategory" validate:"required"`
	EthnicCommunity       string `json:"ethnicCommunity"`
	EthnicGeographic      string `json:"ethnicGeographic"`
	LanguagePreferences   string `json:"languagePreferences"`
	ReligiousAffiliation  string `json:"religiousAffiliation"`
	CommunityOrgs         string `json:"communityOrgs"`
	PrimaryIndustry       string `json:"primaryIndustry"`
	SecondaryIndustry     string `json:"secondaryIndustry"`
	IndustryKeywords      string `json:"industryKeywords"`
	NicheSpecialization   string `json:"nicheSpecialization" validate:"required"`
	TargetJobTitles       string `json:"targetJobTitles"`
	GeographicFocus       string `json:"geographicFocus" validate:"required"`
	CompanySizePreference string `json:"companySizePreference"`
	SeniorityLevel        string `json:"seniorityLevel"`

	CurrentHeadline     string `json:"currentHeadline"`
	CurrentAbout        string `json:"currentAbout"`
	KeyAccomplishments  string `json:"keyAccomplishments"`
	ValueProposition    string `json:"valueProposition"`
	ProfileAssets       string `json:"profileAssets"`
	RecommendationCount string `json:"recommendationCount"`
	Licenses            string `json:"licenses"`
	ProfileNotes        string `json:"profileNotes"`

	ContentApproval       string `json:"contentApproval"`
	PostsPerWeek          string `json:"postsPerWeek"`
	ContentThemes         string `json:"contentThemes"`
	WeekendActivity       string `json:"weekendActivity"`
	PreferredWorkingHours string `json:"preferredWorkingHours"`
	MessagingApproval     string `json:"messagingApproval"`
	CampaignNotes         string `json:"campaignNotes"`

	AgreeTerms    string `json:"agreeTerms" validate:"required,eq=Yes"`
	AgreeContract string `json:"agreeContract"`
	SignatureName string `json:"signatureName" validate:"required"`
	SignatureDate string `json:"signatureDate"`
	SubmittedAt   string `json:"submittedAt"`
}

// GoalDisplay maps the primary goal enum to its program name.
func (s Submission) GoalDisplay() string {
	if s.PrimaryGoal == GoalGrowNetwork {
		return "Grow Network (Affinity 500+)"
	}
	return "Get New Business (Affinity 3000)"
}
