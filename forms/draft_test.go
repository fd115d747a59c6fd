package forms

import (
	"reflect"
	"testing"
	"time"
)

func TestSplitServices(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"Sourdough, Custom Cakes", []string{"Sourdough", "Custom Cakes"}},
		{"Sourdough\nCakes;  Catering ,", []string{"Sourdough", "Cakes", "Catering"}},
	}

	for _, tt := range tests {
		if got := SplitServices(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitServices(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDraftRecord(t *testing.T) {
	s := SanitizeSubmission(validSubmission())
	s.SocialInstagram = "@bluegrassbakehouse"

	b, report := DraftRecord(s, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	if b.Slug != "bluegrass-bakehouse" || b.Featured || b.CreatedAt != "2025-06-01" {
		t.Errorf("unexpected draft %+v", b)
	}
	if !reflect.DeepEqual(b.Services, []string{"Sourdough", "Custom Cakes"}) {
		t.Errorf("Services = %q", b.Services)
	}
	if b.Contact == nil || b.Contact.Email != "june@bluegrassbakehouse.com" {
		t.Errorf("Contact = %+v", b.Contact)
	}
	if !report.Valid() {
		t.Errorf("draft should be a valid record, got %v", report.Errors)
	}
}
