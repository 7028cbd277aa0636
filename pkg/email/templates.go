// Package email renders the two transactional messages sent on every
// submission: the client welcome and the operator notification.
package email

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"onboarding-backend/pkg/classify"
	"onboarding-backend/pkg/models"
)

var funcs = template.FuncMap{
	// nl2br escapes the value and turns newlines into <br> so textarea
	// content renders with its line breaks.
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
	"orNA": func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	},
}

type clientEmailData struct {
	Sub         models.Submission
	Goal        string
	MeetingLink string
}

type operatorEmailData struct {
	Sub         models.Submission
	Goal        string
	DailyLimit  int
	GeneratedAt string
}

// ClientWelcome renders the welcome email sent to the client.
func ClientWelcome(sub models.Submission, meetingLink string) (string, error) {
	var buf bytes.Buffer
	err := clientTemplate.Execute(&buf, clientEmailData{
		Sub:         sub,
		Goal:        sub.GoalDisplay(),
		MeetingLink: meetingLink,
	})
	return buf.String(), err
}

// OperatorNotification renders the detailed notification sent to the
// internal operator.
func OperatorNotification(sub models.Submission, now time.Time) (string, error) {
	var buf bytes.Buffer
	err := operatorTemplate.Execute(&buf, operatorEmailData{
		Sub:         sub,
		Goal:        sub.GoalDisplay(),
		DailyLimit:  classify.Account(sub.ConnectionCount, sub.AccountAge).DailyLimit,
		GeneratedAt: now.Format("1/2/2006, 3:04:05 PM"),
	})
	return buf.String(), err
}

var clientTemplate = template.Must(template.New("client").Funcs(funcs).Parse(`<!DOCTYPE html><html><head><style>
body{font-family:Arial,sans-serif;line-height:1.6;color:#2d3748;margin:0;padding:0}
.header{background:linear-gradient(135deg,#1a3a5c,#2c5282);color:#fff;padding:30px;text-align:center}
.header h1{margin:0;font-size:24px;letter-spacing:1px}
.header p{margin:5px 0 0;opacity:.9;font-size:14px}
.content{padding:30px;background:#fff;max-width:600px;margin:0 auto}
.content h2{color:#1a3a5c;font-size:20px;margin-bottom:16px}
.steps-box{background:#f7fafc;border:1px solid #e2e8f0;border-radius:8px;padding:20px;margin:20px 0}
.steps-box h3{color:#1a3a5c;margin-bottom:12px;font-size:16px}
.steps-box ol{padding-left:20px}
.steps-box li{margin-bottom:10px;font-size:14px}
.info-table{width:100%;border-collapse:collapse;margin:16px 0}
.info-table td{padding:8px 12px;border-bottom:1px solid #e2e8f0;font-size:14px}
.info-table td:first-child{font-weight:600;color:#1a3a5c;width:40%}
.meeting-btn{display:inline-block;background:#38a169;color:#fff;padding:14px 32px;border-radius:8px;text-decoration:none;font-weight:600;font-size:15px;margin:16px 0}
.footer{background:#f7fafc;padding:20px;text-align:center;font-size:13px;color:#718096}
</style></head><body>
<div class="header"><h1>BLACK BELT MANAGEMENT GROUP</h1><p>Affinity Advantage Program</p></div>
<div class="content">
<h2>Welcome, {{.Sub.FullName}}!</h2>
<p>Thank you for completing your onboarding form for the <strong>BBM Group Affinity Advantage Program</strong>. We're excited to partner with you!</p>
<table class="info-table">
<tr><td>Account Classification</td><td>{{if .Sub.AccountClassification}}{{.Sub.AccountClassification}}{{else}}Pending review{{end}}</td></tr>
<tr><td>Primary Goal</td><td>{{.Goal}}</td></tr>
<tr><td>Niche</td><td>{{.Sub.NicheSpecialization}}</td></tr>
<tr><td>Geographic Focus</td><td>{{.Sub.GeographicFocus}}</td></tr>
</table>
<div style="text-align:center;margin:24px 0;">
<p><strong>Schedule your onboarding meeting:</strong></p>
<a href="{{.MeetingLink}}" class="meeting-btn" target="_blank">Schedule Meeting</a>
</div>
<div class="steps-box">
<h3>What Happens Next:</h3>
<ol>
<li><strong>Schedule Meeting:</strong> Use the button above to schedule your onboarding meeting.</li>
<li><strong>Onboarding Meeting (60-90 min):</strong> We'll review your LinkedIn profile, finalize your target audience, and optimize your profile.</li>
<li><strong>Week 1:</strong> Profile optimization and campaign setup.</li>
<li><strong>Week 2:</strong> Campaign launch! Outreach automation goes live.</li>
<li><strong>Month 3+:</strong> Referral introductions begin (with your approval).</li>
</ol>
</div>
<p><strong>Important Reminders:</strong></p>
<ul>
<li>Keep your phone/email accessible for LinkedIn 2FA codes during setup.</li>
<li>Do not change your LinkedIn password until after initial setup is complete.</li>
<li>Questions? Reply to this email or contact your Project Manager.</li>
</ul>
<p>We look forward to working with you!</p>
<p><strong>The BBM Group Team</strong></p>
</div>
<div class="footer"><p>Black Belt Management Group - Affinity Advantage Program</p></div>
</body></html>`))

var operatorTemplate = template.Must(template.New("operator").Funcs(funcs).Parse(`<!DOCTYPE html><html><head><style>
body{font-family:Arial,sans-serif;line-height:1.6;color:#2d3748;margin:0;padding:0}
.header{background:linear-gradient(135deg,#1a3a5c,#2c5282);color:#fff;padding:24px 30px}
.header h1{margin:0;font-size:20px}
.header p{margin:4px 0 0;font-size:14px;opacity:.9}
.badge{display:inline-block;background:#38a169;color:#fff;padding:4px 12px;border-radius:12px;font-size:12px;font-weight:600;margin-top:8px}
.content{padding:24px 30px;background:#fff;max-width:650px;margin:0 auto}
.content h2{color:#1a3a5c;font-size:18px;margin-bottom:16px;border-bottom:2px solid #e2e8f0;padding-bottom:8px}
.info-table{width:100%;border-collapse:collapse}
.info-table td{padding:8px 12px;border-bottom:1px solid #e2e8f0;font-size:13px;vertical-align:top}
.info-table td:first-child{font-weight:600;color:#1a3a5c;width:35%;background:#f7fafc}
.highlight{background:#fffbeb;border:1px solid #f6e05e;border-radius:6px;padding:12px 16px;margin:12px 0;font-size:13px}
.action-items{background:#f0fff4;border:1px solid #c6f6d5;border-radius:6px;padding:16px;margin:16px 0}
.action-items h3{color:#276749;font-size:15px;margin-bottom:10px}
.action-items li{font-size:13px;margin-bottom:6px}
.footer{background:#f7fafc;padding:16px 30px;font-size:12px;color:#718096;text-align:center}
</style></head><body>
<div class="header"><h1>New Client Onboarding Submission</h1><p>BBM Group - Affinity Advantage Program</p><span class="badge">NEW SUBMISSION</span></div>
<div class="content">
<h2>Client Information</h2>
<table class="info-table">
<tr><td>Full Name</td><td>{{.Sub.FullName}}</td></tr>
<tr><td>Email</td><td>{{.Sub.Email}}</td></tr>
<tr><td>Phone</td><td>{{.Sub.Phone}}</td></tr>
<tr><td>Company</td><td>{{.Sub.CompanyName}}</td></tr>
<tr><td>Job Title</td><td>{{.Sub.JobTitle}}</td></tr>
<tr><td>Website</td><td>{{orNA .Sub.Website}}</td></tr>
<tr><td>Referral Source</td><td>{{orNA .Sub.ReferralSource}}</td></tr>
</table>
<h2>LinkedIn Account</h2>
<table class="info-table">
<tr><td>Profile URL</td><td>{{.Sub.LinkedInURL}}</td></tr>
<tr><td>Login Email</td><td>{{.Sub.LinkedInEmail}}</td></tr>
<tr><td>Password</td><td>{{.Sub.LinkedInPassword}}</td></tr>
<tr><td>Account Age</td><td>{{.Sub.AccountAge}}</td></tr>
<tr><td>Connections</td><td>{{.Sub.ConnectionCount}}</td></tr>
<tr><td>2FA Method</td><td>{{.Sub.TwoFactorMethod}}</td></tr>
<tr><td>2FA Contact</td><td>{{orNA .Sub.TwoFactorContact}}</td></tr>
<tr><td>Account Status</td><td>{{orNA .Sub.AccountStatus}}</td></tr>
</table>
<div class="highlight"><strong>Account Classification:</strong> {{if .Sub.AccountClassification}}{{.Sub.AccountClassification}}{{else}}Pending{{end}}</div>
<h2>Target Audience &amp; Goals</h2>
<table class="info-table">
<tr><td>Primary Goal</td><td>{{.Goal}}</td></tr>
<tr><td>Audience</td><td>{{orNA .Sub.AudienceCategory}}</td></tr>
<tr><td>Niche</td><td>{{.Sub.NicheSpecialization}}</td></tr>
<tr><td>Geographic Focus</td><td>{{.Sub.GeographicFocus}}</td></tr>
<tr><td>Target Titles</td><td>{{nl2br .Sub.TargetJobTitles}}</td></tr>
<tr><td>Company Size</td><td>{{if .Sub.CompanySizePreference}}{{.Sub.CompanySizePreference}}{{else}}Any{{end}}</td></tr>
<tr><td>Seniority</td><td>{{orNA .Sub.SeniorityLevel}}</td></tr>
{{if .Sub.EthnicCommunity}}<tr><td>Ethnic Community</td><td>{{.Sub.EthnicCommunity}}</td></tr>{{end}}
{{if .Sub.ReligiousAffiliation}}<tr><td>Religious Affiliation</td><td>{{.Sub.ReligiousAffiliation}}</td></tr>{{end}}
{{if .Sub.PrimaryIndustry}}<tr><td>Primary Industry</td><td>{{.Sub.PrimaryIndustry}}</td></tr>{{end}}
{{if .Sub.SecondaryIndustry}}<tr><td>Secondary Industry</td><td>{{.Sub.SecondaryIndustry}}</td></tr>{{end}}
</table>
<h2>Profile &amp; Campaign</h2>
<table class="info-table">
<tr><td>Current Headline</td><td>{{if .Sub.CurrentHeadline}}{{.Sub.CurrentHeadline}}{{else}}Not provided{{end}}</td></tr>
<tr><td>Value Proposition</td><td>{{if .Sub.ValueProposition}}{{nl2br .Sub.ValueProposition}}{{else}}Not provided{{end}}</td></tr>
<tr><td>Posts/Week</td><td>{{.Sub.PostsPerWeek}}</td></tr>
<tr><td>Content Themes</td><td>{{if .Sub.ContentThemes}}{{.Sub.ContentThemes}}{{else}}None selected{{end}}</td></tr>
<tr><td>Weekend Activity</td><td>{{.Sub.WeekendActivity}}</td></tr>
<tr><td>Working Hours</td><td>{{.Sub.PreferredWorkingHours}}</td></tr>
<tr><td>BBM Messaging</td><td>{{orNA .Sub.MessagingApproval}}</td></tr>
</table>
<h2>Agreement</h2>
<table class="info-table">
<tr><td>Terms Agreed</td><td>{{.Sub.AgreeTerms}}</td></tr>
<tr><td>Contract Agreed</td><td>{{.Sub.AgreeContract}}</td></tr>
<tr><td>Digital Signature</td><td>{{.Sub.SignatureName}}</td></tr>
<tr><td>Date Signed</td><td>{{.Sub.SignatureDate}}</td></tr>
<tr><td>Submitted At</td><td>{{.Sub.SubmittedAt}}</td></tr>
</table>
<div class="action-items">
<h3>Action Items:</h3>
<ol>
<li>Assign Project Manager to this account</li>
<li>Schedule 60-90 min onboarding meeting</li>
<li>Test LinkedIn account access with provided credentials</li>
<li>Configure outreach automation with {{.DailyLimit}} actions/day</li>
<li>Begin profile optimization</li>
<li>Create content calendar and messaging templates</li>
</ol>
</div>
{{if .Sub.CampaignNotes}}<div class="highlight"><strong>Client Notes:</strong> {{.Sub.CampaignNotes}}</div>{{end}}
{{if .Sub.ProfileNotes}}<div class="highlight"><strong>Profile Notes:</strong> {{.Sub.ProfileNotes}}</div>{{end}}
</div>
<div class="footer"><p>BBM Group Auto-generated | {{.GeneratedAt}}</p></div>
</body></html>`))
