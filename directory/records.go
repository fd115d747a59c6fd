package directory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lexabu/woman-owned.com/model"
	"github.com/lexabu/woman-owned.com/utils"
)

const (
	placeholderImage = "/images/placeholder.svg"
	dateLayout       = "2006-01-02"
)

// RecordInput is the raw material for a new directory record.
type RecordInput struct {
	Name        string
	Website     string
	Description string
	Category    string
	City        string
	State       string
	OwnerName   string
	OwnerBio    string
	Services    []string
	Phone       string
	Email       string
	Instagram   string
	Facebook    string
	Twitter     string
}

// ValidateInput returns every problem with in; an empty result means valid.
func ValidateInput(in RecordInput) []string {
	var errs []string

	required := []struct {
		value, msg string
	}{
		{in.Name, "Business name is required"},
		{in.Website, "Website URL is required"},
		{in.Description, "Description is required"},
		{in.Category, "Category is required"},
		{in.City, "City is required"},
		{in.State, "State is required"},
		{in.OwnerName, "Owner name is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, r.msg)
		}
	}
	if len(in.Services) == 0 {
		errs = append(errs, "At least one service is required")
	}

	if in.Website != "" && utils.ValidateWebsite(in.Website) != nil {
		errs = append(errs, "Website URL must be valid (include https://)")
	}
	if in.Email != "" && !utils.IsValidEmail(in.Email) {
		errs = append(errs, "Email address must be valid")
	}

	return errs
}

// GenerateBusiness builds a new, non-featured record from in. Nothing appends
// the result to a live Directory; publishing a business is a manual step.
func GenerateBusiness(in RecordInput, now time.Time) model.Business {
	b := model.Business{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        utils.Slugify(in.Name),
		Description: in.Description,
		Category:    in.Category,
		City:        in.City,
		State:       in.State,
		Website:     in.Website,
		Owner:       model.Owner{Name: in.OwnerName, Bio: in.OwnerBio},
		Image:       placeholderImage,
		Services:    append([]string(nil), in.Services...),
		Featured:    false,
		CreatedAt:   now.Format(dateLayout),
	}

	if in.Instagram != "" || in.Facebook != "" || in.Twitter != "" {
		b.SocialMedia = &model.SocialMedia{
			Instagram: in.Instagram,
			Facebook:  in.Facebook,
			Twitter:   in.Twitter,
		}
	}
	if in.Phone != "" || in.Email != "" {
		b.Contact = &model.Contact{Phone: in.Phone, Email: in.Email}
	}

	return b
}

// Report collects problems found in a record. Errors make a record unusable;
// warnings are editorial suggestions.
type Report struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Valid reports whether the record has no errors.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Report) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// ValidateRecord checks one record against the directory's data rules.
func ValidateRecord(b model.Business) Report {
	var r Report

	required := []struct {
		value, what string
	}{
		{b.ID, "Business ID"},
		{b.Name, "Business name"},
		{b.Slug, "Business slug"},
		{b.Description, "Business description"},
		{b.Category, "Business category"},
		{b.City, "City"},
		{b.State, "State"},
		{b.Website, "Website URL"},
		{b.Owner.Name, "Owner name"},
		{b.CreatedAt, "Created date"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			r.errorf("%s is required", f.what)
		}
	}
	if len(b.Services) == 0 {
		r.errorf("At least one service is required")
	}

	if b.Website != "" && utils.ValidateWebsite(b.Website) != nil {
		r.errorf("Website URL must be valid (include https://)")
	}
	if b.Contact != nil {
		if b.Contact.Email != "" && !utils.IsValidEmail(b.Contact.Email) {
			r.errorf("Contact email must be valid")
		}
		if b.Contact.Phone != "" && !utils.IsValidPhone(b.Contact.Phone) {
			r.warn("Phone number format should be (XXX) XXX-XXXX")
		}
	}
	if b.Slug != "" && !utils.IsValidSlug(b.Slug) {
		r.errorf("Slug must be lowercase with hyphens only (no spaces or special characters)")
	}

	if n := len(b.Description); n > 0 && n < 50 {
		r.warn("Description should be at least 50 characters for better SEO")
	} else if n > 500 {
		r.warn("Description should be under 500 characters for optimal display")
	}

	for i, s := range b.Services {
		if strings.TrimSpace(s) == "" {
			r.errorf("Service at index %d is empty", i)
		}
	}

	if b.SocialMedia != nil && b.SocialMedia.Instagram != "" && !strings.HasPrefix(b.SocialMedia.Instagram, "@") {
		r.warn("Instagram handle should start with @")
	}
	if b.CreatedAt != "" && !utils.IsValidDate(b.CreatedAt) {
		r.errorf("Created date must be in YYYY-MM-DD format")
	}
	if len(b.Name) > 60 {
		r.warn("Business name should be under 60 characters for better SEO titles")
	}
	if b.Owner.Bio == "" {
		r.warn("Owner bio is recommended for better business storytelling")
	}
	if b.Contact == nil || (b.Contact.Phone == "" && b.Contact.Email == "") {
		r.warn("At least one contact method (phone or email) is recommended")
	}

	return r
}

// ValidateCollection validates every record and the cross-record invariants:
// ids and slugs must be unique.
func ValidateCollection(businesses []model.Business) Report {
	var r Report
	seenSlug := make(map[string]bool, len(businesses))
	seenID := make(map[string]bool, len(businesses))

	for _, b := range businesses {
		rec := ValidateRecord(b)
		for _, e := range rec.Errors {
			r.errorf("%s: %s", b.Slug, e)
		}
		for _, w := range rec.Warnings {
			r.warn(b.Slug + ": " + w)
		}

		if b.Slug != "" && seenSlug[b.Slug] {
			r.errorf("duplicate slug %q", b.Slug)
		}
		seenSlug[b.Slug] = true

		if b.ID != "" && seenID[b.ID] {
			r.errorf("duplicate id %q", b.ID)
		}
		seenID[b.ID] = true
	}

	return r
}
