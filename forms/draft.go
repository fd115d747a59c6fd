package forms

import (
	"strings"
	"time"

	"github.com/lexabu/woman-owned.com/directory"
	"github.com/lexabu/woman-owned.com/model"
)

// SplitServices breaks the free-text services field on commas and newlines
func SplitServices(services string) []string {
	fields := strings.FieldsFunc(services, func(r rune) bool {
		return r == ',' || r == '\n' || r == ';'
	})
	result := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			result = append(result, f)
		}
	}
	return result
}

// DraftRecord turns a sanitized submission into an unpublished directory
// record for the reviewer, plus the data-rule report for that record.
func DraftRecord(s model.BusinessSubmission, now time.Time) (model.Business, directory.Report) {
	b := directory.GenerateBusiness(directory.RecordInput{
		Name:        s.BusinessName,
		Website:     s.Website,
		Description: s.Description,
		Category:    s.Category,
		City:        s.City,
		State:       s.State,
		OwnerName:   s.OwnerName,
		Services:    SplitServices(s.Services),
		Phone:       s.Phone,
		Email:       s.Email,
		Instagram:   s.SocialInstagram,
		Facebook:    s.SocialFacebook,
	}, now)
	return b, directory.ValidateRecord(b)
}
