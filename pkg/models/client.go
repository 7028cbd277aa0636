package models

// ClientRecord is the read-side projection of one client-directory row.
// It is rebuilt from the sheet on every list request and is never
// written back.
type ClientRecord struct {
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	DOB                string `json:"dob"`
	Email              string `json:"email"`
	LinkedInEmail      string `json:"linkedinEmail"`
	LinkedInPassword   string `json:"linkedinPassword"`
	GmailAccess        string `json:"gmailAccess"`
	GmailPassword      string `json:"gmailPassword"`
	GmailRecovery      string `json:"gmailRecovery"`
	Location           string `json:"location"`
	AccountType        string `json:"accountType"`
	Tier               string `json:"tier"`
	SubscriptionLevel  string `json:"subscriptionLevel"`
	VerificationStatus string `json:"verificationStatus"`
	Status             string `json:"status"`
	DateAdded          string `json:"dateAdded"`
}

// ClientRecordFromRow projects a directory row positionally into a
// ClientRecord. Short rows are padded with empty strings.
func ClientRecordFromRow(row []string) ClientRecord {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return ClientRecord{
		Name:               cell(0),
		Phone:              cell(1),
		DOB:                cell(2),
		Email:              cell(3),
		LinkedInEmail:      cell(4),
		LinkedInPassword:   cell(5),
		GmailAccess:        cell(6),
		GmailPassword:      cell(7),
		GmailRecovery:      cell(8),
		Location:           cell(9),
		AccountType:        cell(10),
		Tier:               cell(11),
		SubscriptionLevel:  cell(12),
		VerificationStatus: cell(13),
		Status:             cell(14),
		DateAdded:          cell(15),
	}
}
