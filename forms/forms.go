// Package forms validates and sanitizes the two public form payloads.
//
// Validation never fails fast: every broken rule contributes one
// human-readable message, reported in a fixed order so clients can rely on it.
package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lexabu/woman-owned.com/model"
	"github.com/lexabu/woman-owned.com/utils"
)

// rule checks one field against one validator tag. Rules run independently
// so a field can fail several of them.
type rule[T any] struct {
	field func(T) string
	tag   string
	msg   string
}

var contactRules = []rule[model.ContactForm]{
	{func(f model.ContactForm) string { return f.Name }, "nonblank", "Name is required"},
	{func(f model.ContactForm) string { return f.Email }, "nonblank", "Email is required"},
	{func(f model.ContactForm) string { return f.Subject }, "nonblank", "Subject is required"},
	{func(f model.ContactForm) string { return f.Message }, "nonblank", "Message is required"},
	{func(f model.ContactForm) string { return f.Email }, "omitempty,looseemail", "Valid email address is required"},
	{func(f model.ContactForm) string { return f.Message }, "omitempty,min=10", "Message must be at least 10 characters"},
	{func(f model.ContactForm) string { return f.Message }, "omitempty,max=2000", "Message must be less than 2000 characters"},
	{func(f model.ContactForm) string { return f.Name }, "omitempty,max=100", "Name must be less than 100 characters"},
	{func(f model.ContactForm) string { return f.Subject }, "omitempty,max=200", "Subject must be less than 200 characters"},
}

var submissionRules = []rule[model.BusinessSubmission]{
	{func(s model.BusinessSubmission) string { return s.BusinessName }, "nonblank", "Business name is required"},
	{func(s model.BusinessSubmission) string { return s.OwnerName }, "nonblank", "Owner name is required"},
	{func(s model.BusinessSubmission) string { return s.Email }, "nonblank", "Email is required"},
	{func(s model.BusinessSubmission) string { return s.Website }, "nonblank", "Website is required"},
	{func(s model.BusinessSubmission) string { return s.City }, "nonblank", "City is required"},
	{func(s model.BusinessSubmission) string { return s.State }, "nonblank", "State is required"},
	{func(s model.BusinessSubmission) string { return s.Category }, "nonblank", "Category is required"},
	{func(s model.BusinessSubmission) string { return s.Description }, "nonblank", "Description is required"},
	{func(s model.BusinessSubmission) string { return s.Email }, "omitempty,looseemail", "Valid email address is required"},
	{func(s model.BusinessSubmission) string { return s.Website }, "omitempty,httpscheme", "Website URL must include http:// or https://"},
	{func(s model.BusinessSubmission) string { return s.Website }, "omitempty,weburl", "Valid website URL is required"},
	{func(s model.BusinessSubmission) string { return s.Description }, "omitempty,min=50", "Description must be at least 50 characters"},
	{func(s model.BusinessSubmission) string { return s.Description }, "omitempty,max=1000", "Description must be less than 1000 characters"},
}

// SpamMessage is reported when a contact message hits the keyword denylist
const SpamMessage = "Message contains prohibited content"

var spamKeywords = []string{"viagra", "casino", "lottery", "winner", "congratulations", "bitcoin", "crypto"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for empty tag names or nil funcs
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return utils.IsValidEmail(fl.Field().String())
	})
	// weburl and httpscheme never fail together: a URL that does not parse
	// has no scheme worth reporting
	_ = v.RegisterValidation("weburl", func(fl validator.FieldLevel) bool {
		err := utils.ValidateWebsite(fl.Field().String())
		return err == nil || errors.Is(err, utils.ErrInvalidScheme)
	})
	_ = v.RegisterValidation("httpscheme", func(fl validator.FieldLevel) bool {
		return !errors.Is(utils.ValidateWebsite(fl.Field().String()), utils.ErrInvalidScheme)
	})
	return v
}

// ValidateContact returns every problem with f; empty means valid
func ValidateContact(f model.ContactForm) []string {
	errs := check(f, contactRules)
	if ContainsSpam(f.Name, f.Subject, f.Message) {
		errs = append(errs, SpamMessage)
	}
	return errs
}

// ValidateSubmission returns every problem with s; empty means valid
func ValidateSubmission(s model.BusinessSubmission) []string {
	return check(s, submissionRules)
}

// PrepareContact validates f, sanitizes it and validates the sanitized copy
// again, since stripping markup can empty a field or shorten it below its
// minimum. The copy is only meaningful when no errors are returned.
func PrepareContact(f model.ContactForm) (model.ContactForm, []string) {
	if errs := ValidateContact(f); len(errs) > 0 {
		return model.ContactForm{}, errs
	}
	clean := SanitizeContact(f)
	return clean, ValidateContact(clean)
}

// PrepareSubmission is PrepareContact for business submissions
func PrepareSubmission(s model.BusinessSubmission) (model.BusinessSubmission, []string) {
	if errs := ValidateSubmission(s); len(errs) > 0 {
		return model.BusinessSubmission{}, errs
	}
	clean := SanitizeSubmission(s)
	return clean, ValidateSubmission(clean)
}

// ContainsSpam reports whether any denylisted keyword appears in the joined text
func ContainsSpam(parts ...string) bool {
	text := strings.ToLower(strings.Join(parts, " "))
	for _, keyword := range spamKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func check[T any](form T, rules []rule[T]) []string {
	errs := make([]string, 0)
	for _, r := range rules {
		if err := validate.Var(r.field(form), r.tag); err != nil {
			errs = append(errs, r.msg)
		}
	}
	return errs
}
