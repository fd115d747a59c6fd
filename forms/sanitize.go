package forms

import (
	"html"
	"strings"

	"github.com/lexabu/woman-owned.com/model"
	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// plainText trims s and strips any markup, leaving unescaped text.
// Output templates do their own escaping.
func plainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(strings.TrimSpace(s))))
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SanitizeContact returns a cleaned copy of f
func SanitizeContact(f model.ContactForm) model.ContactForm {
	return model.ContactForm{
		Name:    plainText(f.Name),
		Email:   normalizeEmail(f.Email),
		Subject: plainText(f.Subject),
		Message: plainText(f.Message),
	}
}

// SanitizeSubmission returns a cleaned copy of s. The website is only trimmed
// since it has already been checked as an http(s) URL.
func SanitizeSubmission(s model.BusinessSubmission) model.BusinessSubmission {
	return model.BusinessSubmission{
		BusinessName:    plainText(s.BusinessName),
		OwnerName:       plainText(s.OwnerName),
		Email:           normalizeEmail(s.Email),
		Phone:           plainText(s.Phone),
		Website:         strings.TrimSpace(s.Website),
		City:            plainText(s.City),
		State:           plainText(s.State),
		Category:        plainText(s.Category),
		Description:     plainText(s.Description),
		Services:        plainText(s.Services),
		SocialInstagram: plainText(s.SocialInstagram),
		SocialFacebook:  plainText(s.SocialFacebook),
		AdditionalInfo:  plainText(s.AdditionalInfo),
	}
}
