package form

// Kind describes how a form control is validated and collected.
type Kind int

const (
	Text Kind = iota
	Email
	Date
	Select
	TextArea
	Radio
	Checkbox
	CheckboxGroup
)

// Field is one control inside a step. A non-empty Block ties the field
// to a conditional block; fields in hidden blocks are skipped by
// validation.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Block    string
}

// Step is one screen of the multi-screen form.
type Step struct {
	Fields []Field
}

// Conditional blocks revealed by specific selections. A block is shown
// either when a checkbox-group option is checked (Group/Option) or when
// a select holds anything other than HideValue (Field/HideValue).
type conditionalRule struct {
	Block     string
	Group     string
	Option    string
	Field     string
	HideValue string
}

var conditionalRules = []conditionalRule{
	{Block: "ethnicDetails", Group: "audienceCategory", Option: "ethnic"},
	{Block: "religiousDetails", Group: "audienceCategory", Option: "religious"},
	{Block: "industryDetails", Group: "audienceCategory", Option: "industry"},
	{Block: "twoFactorContactGroup", Field: "twoFactorMethod", HideValue: "none"},
}

// The six onboarding screens. Step 3 additionally requires a non-empty
// audience category set, enforced in ValidateStep.
var onboardingSteps = []Step{
	{Fields: []Field{ // step 1: identity
		{Name: "fullName", Kind: Text, Required: true},
		{Name: "email", Kind: Email, Required: true},
		{Name: "phone", Kind: Text, Required: true},
		{Name: "companyName", Kind: Text, Required: true},
		{Name: "jobTitle", Kind: Text, Required: true},
		{Name: "website", Kind: Text},
		{Name: "referralSource", Kind: Select},
	}},
	{Fields: []Field{ // step 2: linkedin account
		{Name: "linkedinUrl", Kind: Text, Required: true},
		{Name: "linkedinEmail", Kind: Email, Required: true},
		{Name: "linkedinPassword", Kind: Text, Required: true},
		{Name: "accountAge", Kind: Radio, Required: true},
		{Name: "connectionCount", Kind: Radio, Required: true},
		{Name: "twoFactorMethod", Kind: Select, Required: true},
		{Name: "twoFactorContact", Kind: Text, Required: true, Block: "twoFactorContactGroup"},
		{Name: "accountStatus", Kind: Select},
	}},
	{Fields: []Field{ // step 3: targeting
		{Name: "primaryGoal", Kind: Radio, Required: true},
		{Name: "audienceCategory", Kind: CheckboxGroup},
		{Name: "ethnicCommunity", Kind: Text, Block: "ethnicDetails"},
		{Name: "ethnicGeographic", Kind: Text, Block: "ethnicDetails"},
		{Name: "languagePreferences", Kind: Text, Block: "ethnicDetails"},
		{Name: "religiousAffiliation", Kind: Text, Block: "religiousDetails"},
		{Name: "communityOrgs", Kind: Text, Block: "religiousDetails"},
		{Name: "primaryIndustry", Kind: Text, Block: "industryDetails"},
		{Name: "secondaryIndustry", Kind: Text, Block: "industryDetails"},
		{Name: "industryKeywords", Kind: Text, Block: "industryDetails"},
		{Name: "nicheSpecialization", Kind: Text, Required: true},
		{Name: "targetJobTitles", Kind: TextArea},
		{Name: "geographicFocus", Kind: Text, Required: true},
		{Name: "companySizePreference", Kind: Select},
		{Name: "seniorityLevel", Kind: Select},
	}},
	{Fields: []Field{ // step 4: profile
		{Name: "currentHeadline", Kind: Text},
		{Name: "currentAbout", Kind: TextArea},
		{Name: "keyAccomplishments", Kind: TextArea},
		{Name: "valueProposition", Kind: TextArea, Required: true},
		{Name: "profileAssets", Kind: CheckboxGroup},
		{Name: "recommendationCount", Kind: Text},
		{Name: "licenses", Kind: CheckboxGroup},
		{Name: "profileNotes", Kind: TextArea},
	}},
	{Fields: []Field{ // step 5: campaign
		{Name: "contentApproval", Kind: Radio, Required: true},
		{Name: "postsPerWeek", Kind: Select, Required: true},
		{Name: "contentThemes", Kind: CheckboxGroup},
		{Name: "weekendActivity", Kind: Radio, Required: true},
		{Name: "preferredWorkingHours", Kind: Select, Required: true},
		{Name: "messagingApproval", Kind: Radio, Required: true},
		{Name: "campaignNotes", Kind: TextArea},
	}},
	{Fields: []Field{ // step 6: agreement
		{Name: "agreeTerms", Kind: Checkbox, Required: true},
		{Name: "agreeContract", Kind: Checkbox},
		{Name: "signatureName", Kind: Text, Required: true},
		{Name: "signatureDate", Kind: Date},
	}},
}
