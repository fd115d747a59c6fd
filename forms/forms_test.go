package forms

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lexabu/woman-owned.com/model"
)

func validContact() model.ContactForm {
	return model.ContactForm{
		Name:    "Dana",
		Email:   "dana@example.com",
		Subject: "Listing question",
		Message: "How do I update my business hours?",
	}
}

func validSubmission() model.BusinessSubmission {
	return model.BusinessSubmission{
		BusinessName: "Bluegrass Bakehouse",
		OwnerName:    "June Carter",
		Email:        "june@bluegrassbakehouse.com",
		Website:      "https://bluegrassbakehouse.com",
		City:         "Lexington",
		State:        "Kentucky",
		Category:     "Food & Dining",
		Description:  "Small-batch sourdough, pastries and custom celebration cakes baked fresh every morning.",
		Services:     "Sourdough, Custom Cakes",
	}
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ContactForm)
		want   []string
	}{
		{
			name:   "Valid",
			mutate: func(f *model.ContactForm) {},
			want:   []string{},
		},
		{
			name:   "All empty",
			mutate: func(f *model.ContactForm) { *f = model.ContactForm{} },
			want:   []string{"Name is required", "Email is required", "Subject is required", "Message is required"},
		},
		{
			name:   "Whitespace only name",
			mutate: func(f *model.ContactForm) { f.Name = "   " },
			want:   []string{"Name is required"},
		},
		{
			name:   "Whitespace only message fails every rule it breaks",
			mutate: func(f *model.ContactForm) { f.Message = "   " },
			want:   []string{"Message is required", "Message must be at least 10 characters"},
		},
		{
			name:   "Whitespace only email",
			mutate: func(f *model.ContactForm) { f.Email = " " },
			want:   []string{"Email is required", "Valid email address is required"},
		},
		{
			name:   "Bad email",
			mutate: func(f *model.ContactForm) { f.Email = "dana@example" },
			want:   []string{"Valid email address is required"},
		},
		{
			name:   "Short message",
			mutate: func(f *model.ContactForm) { f.Message = "Hi there" },
			want:   []string{"Message must be at least 10 characters"},
		},
		{
			name:   "Exactly ten characters",
			mutate: func(f *model.ContactForm) { f.Message = "0123456789" },
			want:   []string{},
		},
		{
			name:   "Long message",
			mutate: func(f *model.ContactForm) { f.Message = strings.Repeat("a", 2001) },
			want:   []string{"Message must be less than 2000 characters"},
		},
		{
			name: "Long name and subject keep rule order",
			mutate: func(f *model.ContactForm) {
				f.Subject = strings.Repeat("s", 201)
				f.Name = strings.Repeat("n", 101)
				f.Email = "nope"
			},
			want: []string{
				"Valid email address is required",
				"Name must be less than 100 characters",
				"Subject must be less than 200 characters",
			},
		},
		{
			name:   "Spam keyword in subject",
			mutate: func(f *model.ContactForm) { f.Subject = "You are a WINNER" },
			want:   []string{SpamMessage},
		},
		{
			name:   "Spam is reported with other errors",
			mutate: func(f *model.ContactForm) { f.Message = "bitcoin" },
			want:   []string{"Message must be at least 10 characters", SpamMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validContact()
			tt.mutate(&f)
			if got := ValidateContact(f); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateContact() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.BusinessSubmission)
		want   []string
	}{
		{
			name:   "Valid",
			mutate: func(s *model.BusinessSubmission) {},
			want:   []string{},
		},
		{
			name:   "Optional fields may be empty",
			mutate: func(s *model.BusinessSubmission) { s.Services, s.Phone = "", "" },
			want:   []string{},
		},
		{
			name:   "All empty",
			mutate: func(s *model.BusinessSubmission) { *s = model.BusinessSubmission{} },
			want: []string{
				"Business name is required",
				"Owner name is required",
				"Email is required",
				"Website is required",
				"City is required",
				"State is required",
				"Category is required",
				"Description is required",
			},
		},
		{
			name:   "Website without scheme",
			mutate: func(s *model.BusinessSubmission) { s.Website = "bluegrassbakehouse.com" },
			want:   []string{"Valid website URL is required"},
		},
		{
			name:   "Website with other scheme",
			mutate: func(s *model.BusinessSubmission) { s.Website = "ftp://bluegrassbakehouse.com" },
			want:   []string{"Website URL must include http:// or https://"},
		},
		{
			name:   "Plain http is accepted",
			mutate: func(s *model.BusinessSubmission) { s.Website = "http://bluegrassbakehouse.com" },
			want:   []string{},
		},
		{
			name: "Email and description",
			mutate: func(s *model.BusinessSubmission) {
				s.Email = "june at bakehouse"
				s.Description = "Too short."
			},
			want: []string{"Valid email address is required", "Description must be at least 50 characters"},
		},
		{
			name:   "Description too long",
			mutate: func(s *model.BusinessSubmission) { s.Description = strings.Repeat("d", 1001) },
			want:   []string{"Description must be less than 1000 characters"},
		},
		{
			name:   "Spam keywords are not checked for submissions",
			mutate: func(s *model.BusinessSubmission) { s.BusinessName = "Crypto Cakes" },
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSubmission()
			tt.mutate(&s)
			if got := ValidateSubmission(s); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateSubmission() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContainsSpam(t *testing.T) {
	tests := []struct {
		parts []string
		want  bool
	}{
		{[]string{"Hello", "Question", "About my listing"}, false},
		{[]string{"", "", "Free CASINO chips"}, true},
		{[]string{"Congratulations!"}, true},
		{[]string{"cryptography class"}, true},
	}

	for _, tt := range tests {
		if got := ContainsSpam(tt.parts...); got != tt.want {
			t.Errorf("ContainsSpam(%q) = %v, want %v", tt.parts, got, tt.want)
		}
	}
}

func TestPrepareContact(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*model.ContactForm)
		want     []string
		wantName string
	}{
		{
			name:     "Valid input is cleaned",
			mutate:   func(f *model.ContactForm) { f.Name = " Dana <b>Smith</b> " },
			want:     []string{},
			wantName: "Dana Smith",
		},
		{
			name: "Markup only fields are empty after cleaning",
			mutate: func(f *model.ContactForm) {
				f.Name = "<b></b>"
				f.Message = "<script>alert(1)</script>"
			},
			want: []string{"Name is required", "Message is required"},
		},
		{
			name:   "Stripped message falls below the minimum",
			mutate: func(f *model.ContactForm) { f.Message = "<em>Hi</em><script>some long payload</script>" },
			want:   []string{"Message must be at least 10 characters"},
		},
		{
			name:   "Raw errors are reported before cleaning",
			mutate: func(f *model.ContactForm) { f.Email = "nope" },
			want:   []string{"Valid email address is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validContact()
			tt.mutate(&f)
			clean, errs := PrepareContact(f)
			if !reflect.DeepEqual(errs, tt.want) {
				t.Errorf("PrepareContact() errors = %q, want %q", errs, tt.want)
			}
			if tt.wantName != "" && clean.Name != tt.wantName {
				t.Errorf("clean name = %q, want %q", clean.Name, tt.wantName)
			}
		})
	}
}

func TestPrepareSubmission(t *testing.T) {
	s := validSubmission()
	s.Description = "<style>" + strings.Repeat("x", 60) + "</style>Fresh bread."

	_, errs := PrepareSubmission(s)
	want := []string{"Description must be at least 50 characters"}
	if !reflect.DeepEqual(errs, want) {
		t.Errorf("PrepareSubmission() errors = %q, want %q", errs, want)
	}

	clean, errs := PrepareSubmission(validSubmission())
	if len(errs) != 0 || clean.Email != "june@bluegrassbakehouse.com" {
		t.Errorf("PrepareSubmission(valid) = %+v, %q", clean, errs)
	}
}
