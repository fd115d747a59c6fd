package email

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lexabu/woman-owned.com/config"
	"github.com/lexabu/woman-owned.com/directory"
	"github.com/lexabu/woman-owned.com/model"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type recordingSender struct {
	sent []Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, msg)
	return nil
}

func testConfig(enabled bool) config.EmailConfig {
	return config.EmailConfig{
		Enabled:      enabled,
		FromEmail:    "hello@woman-owned.com",
		FromName:     "Woman-Owned",
		AdminEmail:   "admin@woman-owned.com",
		ContactEmail: "hello@woman-owned.com",
		DirectoryURL: "https://woman-owned.com/directory",
	}
}

func testSubmission() model.BusinessSubmission {
	return model.BusinessSubmission{
		BusinessName: "Bluegrass Bakehouse",
		OwnerName:    "June",
		Email:        "june@bluegrassbakehouse.com",
		Website:      "https://bluegrassbakehouse.com",
		City:         "Lexington",
		State:        "Kentucky",
		Category:     "Food & Dining",
		Description:  "Small-batch sourdough, pastries and custom celebration cakes baked fresh every morning.",
		Services:     "Sourdough, Custom Cakes",
	}
}

func TestContactEmail(t *testing.T) {
	s := NewService(testConfig(false), "Woman-Owned.com", nil)

	msg, err := s.ContactEmail(model.ContactForm{
		Name:    "Dana",
		Email:   "dana@example.com",
		Subject: "Hours <update>",
		Message: "Line one\nLine two",
	})
	if err != nil {
		t.Fatalf("ContactEmail() error = %v", err)
	}

	if msg.Subject != "Contact Form: Hours <update>" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.To != "hello@woman-owned.com" || msg.ReplyTo != "dana@example.com" {
		t.Errorf("To = %q, ReplyTo = %q", msg.To, msg.ReplyTo)
	}
	if msg.From != "Woman-Owned <hello@woman-owned.com>" {
		t.Errorf("From = %q", msg.From)
	}
	if !strings.Contains(msg.HTML, "Line one<br>Line two") {
		t.Error("HTML body should join message lines with <br>")
	}

	noInbox := testConfig(false)
	noInbox.ContactEmail = ""
	fallback, err := NewService(noInbox, "Woman-Owned.com", nil).ContactEmail(model.ContactForm{Subject: "Hi"})
	if err != nil || fallback.To != "admin@woman-owned.com" {
		t.Errorf("without a contact inbox To = %q, %v; want the admin address", fallback.To, err)
	}
	if !strings.Contains(msg.HTML, "Hours &lt;update&gt;") {
		t.Error("HTML body should escape user text")
	}
	if !strings.Contains(msg.Text, "SUBJECT: Hours <update>") || !strings.Contains(msg.Text, "Line one\nLine two") {
		t.Errorf("unexpected text body:\n%s", msg.Text)
	}
}

func TestSubmissionEmail(t *testing.T) {
	s := NewService(testConfig(false), "Woman-Owned.com", nil)
	sub := testSubmission()
	draft := directory.GenerateBusiness(directory.RecordInput{
		Name: sub.BusinessName, Website: sub.Website, Description: sub.Description,
		Category: sub.Category, City: sub.City, State: sub.State, OwnerName: sub.OwnerName,
		Services: []string{"Sourdough"},
	}, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	report := directory.ValidateRecord(draft)

	msg, err := s.SubmissionEmail(sub, draft, report)
	if err != nil {
		t.Fatalf("SubmissionEmail() error = %v", err)
	}

	if msg.Subject != "New Business Submission: Bluegrass Bakehouse" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.To != "admin@woman-owned.com" {
		t.Errorf("To = %q", msg.To)
	}
	for _, want := range []string{`"slug": "bluegrass-bakehouse"`, "SERVICES OFFERED", "Location: Lexington, Kentucky", "Warning: "} {
		if !strings.Contains(msg.Text, want) {
			t.Errorf("text body is missing %q", want)
		}
	}
	if strings.Contains(msg.Text, "SOCIAL MEDIA") || strings.Contains(msg.Text, "Phone:") {
		t.Error("empty optional sections should be omitted")
	}
	if !strings.Contains(msg.HTML, `<a href="https://bluegrassbakehouse.com" target="_blank">`) {
		t.Error("HTML body should link the website")
	}
	if !strings.Contains(msg.HTML, "Food &amp; Dining") {
		t.Error("HTML body should escape the category")
	}
}

func TestOwnerConfirmationEmail(t *testing.T) {
	s := NewService(testConfig(false), "Woman-Owned.com", nil)

	msg, err := s.OwnerConfirmationEmail(testSubmission())
	if err != nil {
		t.Fatalf("OwnerConfirmationEmail() error = %v", err)
	}

	if msg.Subject != "Thank you for submitting Bluegrass Bakehouse to Woman-Owned.com" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.To != "june@bluegrassbakehouse.com" {
		t.Errorf("To = %q", msg.To)
	}
	if !strings.Contains(msg.Text, "Thank You, June!") || !strings.Contains(msg.Text, "Visit: https://woman-owned.com/directory") {
		t.Errorf("unexpected text body:\n%s", msg.Text)
	}
	if !strings.Contains(msg.HTML, `href="https://woman-owned.com/directory"`) {
		t.Error("HTML body should link the directory")
	}
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()
	msgs := []Message{{To: "a@example.com", Subject: "one"}, {To: "b@example.com", Subject: "two"}}

	t.Run("Disabled", func(t *testing.T) {
		rec := &recordingSender{}
		if err := NewService(testConfig(false), "Woman-Owned.com", rec).Dispatch(ctx, msgs...); err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if len(rec.sent) != 0 {
			t.Errorf("disabled service sent %d messages", len(rec.sent))
		}
	})

	t.Run("Enabled", func(t *testing.T) {
		rec := &recordingSender{}
		if err := NewService(testConfig(true), "Woman-Owned.com", rec).Dispatch(ctx, msgs...); err != nil {
			t.Fatalf("Dispatch() error = %v", err)
		}
		if len(rec.sent) != 2 {
			t.Errorf("sent %d messages, want 2", len(rec.sent))
		}
	})

	t.Run("Sender_error", func(t *testing.T) {
		boom := errors.New("smtp down")
		err := NewService(testConfig(true), "Woman-Owned.com", &recordingSender{err: boom}).Dispatch(ctx, msgs...)
		if !errors.Is(err, boom) {
			t.Errorf("Dispatch() error = %v, want %v", err, boom)
		}
	})

	t.Run("Default_sender", func(t *testing.T) {
		if err := NewService(testConfig(true), "Woman-Owned.com", nil).Dispatch(ctx, msgs...); err != nil {
			t.Errorf("LogSender should never fail, got %v", err)
		}
	})
}

func TestLogSenderVerbosity(t *testing.T) {
	msg := Message{
		To:      "june@bluegrassbakehouse.com",
		ReplyTo: "hello@woman-owned.com",
		Subject: "Thank you for submitting Bluegrass Bakehouse",
		Text:    "We received your submission.",
	}

	for _, verbose := range []bool{false, true} {
		var buf bytes.Buffer
		previous := log.Logger
		log.Logger = zerolog.New(&buf)

		err := LogSender{Verbose: verbose}.Send(context.Background(), msg)
		log.Logger = previous
		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "discarded") {
			t.Errorf("verbose=%v: nothing logged", verbose)
		}
		for _, detail := range []string{msg.To, msg.Subject, msg.Text} {
			if got := strings.Contains(out, detail); got != verbose {
				t.Errorf("verbose=%v: log contains %q = %v", verbose, detail, got)
			}
		}
	}
}
