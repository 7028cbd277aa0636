// Package form models the six-step onboarding form: step navigation,
// per-step validation, conditional field visibility and final
// collection into the flat submission mapping.
package form

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"onboarding-backend/pkg/classify"
)

// TotalSteps is the number of screens in the onboarding form.
const TotalSteps = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation messages rendered next to the failing field.
const (
	msgRequired       = "This field is required."
	msgSelectOption   = "Please select an option."
	msgInvalidEmail   = "Please enter a valid email address."
	msgAudienceNeeded = "Please select at least one target audience category."
)

// Form tracks the state of one in-progress onboarding submission.
type Form struct {
	current int
	values  map[string]string
	checked map[string]bool
	groups  map[string][]string
	errors  map[string]string
	// first invalid field of the last failed validation, the scroll
	// target on a real screen
	firstInvalid string

	now func() time.Time
}

// New returns a form positioned on step 1 with no values set.
func New() *Form {
	return &Form{
		current: 1,
		values:  make(map[string]string),
		checked: make(map[string]bool),
		groups:  make(map[string][]string),
		errors:  make(map[string]string),
		now:     time.Now,
	}
}

// CurrentStep reports the active step, always within [1, TotalSteps].
func (f *Form) CurrentStep() int { return f.current }

// Progress reports the fraction of steps reached, for the progress bar.
func (f *Form) Progress() float64 { return float64(f.current) / TotalSteps }

// ShowPrevious reports whether the previous-step control is visible.
func (f *Form) ShowPrevious() bool { return f.current > 1 }

// ShowNext reports whether the next-step control is visible.
func (f *Form) ShowNext() bool { return f.current < TotalSteps }

// ShowSubmit reports whether the submit control is visible.
func (f *Form) ShowSubmit() bool { return f.current == TotalSteps }

// SetValue records a text, select, textarea, radio or date value.
func (f *Form) SetValue(name, value string) { f.values[name] = value }

// SetChecked records the state of a single checkbox.
func (f *Form) SetChecked(name string, checked bool) { f.checked[name] = checked }

// CheckOption adds one option to a checkbox group.
func (f *Form) CheckOption(group, option string) {
	for _, v := range f.groups[group] {
		if v == option {
			return
		}
	}
	f.groups[group] = append(f.groups[group], option)
}

// UncheckOption removes one option from a checkbox group.
func (f *Form) UncheckOption(group, option string) {
	vals := f.groups[group]
	for i, v := range vals {
		if v == option {
			f.groups[group] = append(vals[:i], vals[i+1:]...)
			return
		}
	}
}

// Advance moves one step forward or backward. Forward moves validate
// the active step first and stay put when validation fails. The step is
// clamped to [1, TotalSteps]. Reports whether the step changed.
func (f *Form) Advance(direction int) bool {
	if direction == 1 && !f.ValidateStep(f.current) {
		return false
	}
	next := f.current + direction
	if next < 1 || next > TotalSteps {
		return false
	}
	f.current = next
	return true
}

// BlockVisible reports whether a conditional block is currently shown.
// Unknown block names are always visible.
func (f *Form) BlockVisible(block string) bool {
	for _, rule := range conditionalRules {
		if rule.Block != block {
			continue
		}
		if rule.Group != "" {
			return f.groupHas(rule.Group, rule.Option)
		}
		val := f.values[rule.Field]
		return val != "" && val != rule.HideValue
	}
	return true
}

// ValidateStep validates every field of the given step. It clears the
// step's previous errors first, so calling it twice with unchanged
// inputs yields the same result and the same messages.
func (f *Form) ValidateStep(step int) bool {
	if step < 1 || step > TotalSteps {
		return false
	}
	fields := onboardingSteps[step-1].Fields

	for _, field := range fields {
		delete(f.errors, field.Name)
	}
	f.firstInvalid = ""

	valid := true
	fail := func(name, msg string) {
		valid = false
		f.errors[name] = msg
		if f.firstInvalid == "" {
			f.firstInvalid = name
		}
	}

	for _, field := range fields {
		if field.Block != "" && !f.BlockVisible(field.Block) {
			continue
		}
		switch field.Kind {
		case Radio:
			if field.Required && f.values[field.Name] == "" {
				fail(field.Name, msgSelectOption)
			}
		case Checkbox:
			if field.Required && !f.checked[field.Name] {
				fail(field.Name, msgRequired)
			}
		case CheckboxGroup:
			// group emptiness is only enforced by step rules below
		case Email:
			val := strings.TrimSpace(f.values[field.Name])
			if field.Required && val == "" {
				fail(field.Name, msgRequired)
			} else if val != "" && !emailPattern.MatchString(val) {
				fail(field.Name, msgInvalidEmail)
			}
		default:
			if field.Required && strings.TrimSpace(f.values[field.Name]) == "" {
				fail(field.Name, msgRequired)
			}
		}
	}

	// Step 3 requires at least one audience category.
	if step == 3 && len(f.groups["audienceCategory"]) == 0 {
		fail("audienceCategory", msgAudienceNeeded)
	}

	return valid
}

// Errors returns the field error messages from the last validation.
func (f *Form) Errors() map[string]string { return f.errors }

// FirstInvalid names the first failing field of the last validation, or
// "" when it passed.
func (f *Form) FirstInvalid() string { return f.firstInvalid }

// Collect freezes the form into the flat submission mapping. It must
// only be called after the final step validates; it re-checks and
// returns false when it does not. Checkbox groups are joined with ", ",
// agreement checkboxes map to "Yes"/"No", the signature date defaults
// to today and the derived classification and timestamp are stamped in.
func (f *Form) Collect() (map[string]string, bool) {
	if f.current != TotalSteps || !f.ValidateStep(f.current) {
		return nil, false
	}

	data := make(map[string]string)
	for _, step := range onboardingSteps {
		for _, field := range step.Fields {
			switch field.Kind {
			case Checkbox:
				if f.checked[field.Name] {
					data[field.Name] = "Yes"
				} else {
					data[field.Name] = "No"
				}
			case CheckboxGroup:
				data[field.Name] = strings.Join(f.groups[field.Name], ", ")
			default:
				data[field.Name] = f.values[field.Name]
			}
		}
	}

	if data["signatureDate"] == "" {
		data["signatureDate"] = f.now().Format("2006-01-02")
	}
	data["submittedAt"] = f.now().UTC().Format(time.RFC3339)
	data["accountClassification"] = classify.Account(data["connectionCount"], data["accountAge"]).Display

	return data, true
}

func (f *Form) groupHas(group, option string) bool {
	for _, v := range f.groups[group] {
		if v == option {
			return true
		}
	}
	return false
}

// FieldNames lists every field of every step, sorted, useful for
// asserting coverage in tests.
func FieldNames() []string {
	var names []string
	for _, step := range onboardingSteps {
		for _, field := range step.Fields {
			names = append(names, field.Name)
		}
	}
	sort.Strings(names)
	return names
}
