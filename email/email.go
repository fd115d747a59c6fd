// Package email renders the notification messages produced by the form
// endpoints and hands them to a Sender.
//
// No real transport is wired. The default LogSender records each message
// and drops it.
package email

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/lexabu/woman-owned.com/config"
	"github.com/lexabu/woman-owned.com/directory"
	"github.com/lexabu/woman-owned.com/model"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*
var templateFS embed.FS

var funcs = map[string]any{
	"lines": func(s string) []string { return strings.Split(s, "\n") },
}

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.txt"))
)

// Message is a rendered email
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers messages
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LogSender discards messages after logging them. Verbose adds the
// addresses and the text body, so it is meant for development only.
type LogSender struct {
	Verbose bool
}

func (s LogSender) Send(_ context.Context, msg Message) error {
	event := log.Info().
		Int("html_bytes", len(msg.HTML)).
		Int("text_bytes", len(msg.Text))
	if s.Verbose {
		event = event.
			Str("to", msg.To).
			Str("reply_to", msg.ReplyTo).
			Str("subject", msg.Subject).
			Str("text", msg.Text)
	}
	event.Msg("Email generated (no transport configured, discarded)")
	return nil
}

// Service builds messages from form data and dispatches them
type Service struct {
	cfg      config.EmailConfig
	siteName string
	sender   Sender
}

// NewService creates a Service. A nil sender means LogSender.
func NewService(cfg config.EmailConfig, siteName string, sender Sender) *Service {
	if sender == nil {
		sender = LogSender{}
	}
	return &Service{cfg: cfg, siteName: siteName, sender: sender}
}

func (s *Service) from() string {
	return fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
}

// contactRecipient falls back to the admin address when no contact inbox is set
func (s *Service) contactRecipient() string {
	if s.cfg.ContactEmail != "" {
		return s.cfg.ContactEmail
	}
	return s.cfg.AdminEmail
}

type contactData struct {
	SiteName string
	Form     model.ContactForm
}

type submissionData struct {
	SiteName     string
	DirectoryURL string
	ReplyTo      string
	Form         model.BusinessSubmission
	Report       directory.Report
	DraftJSON    string
}

// ContactEmail renders the admin notification for a contact message
func (s *Service) ContactEmail(f model.ContactForm) (Message, error) {
	msg := Message{
		From:    s.from(),
		To:      s.contactRecipient(),
		ReplyTo: f.Email,
		Subject: "Contact Form: " + f.Subject,
	}
	return msg, render(&msg, "contact", contactData{SiteName: s.siteName, Form: f})
}

// SubmissionEmail renders the admin notification for a business submission,
// carrying the draft record and its validation report for review.
func (s *Service) SubmissionEmail(f model.BusinessSubmission, draft model.Business, report directory.Report) (Message, error) {
	draftJSON, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return Message{}, fmt.Errorf("encode draft record: %w", err)
	}

	msg := Message{
		From:    s.from(),
		To:      s.cfg.AdminEmail,
		ReplyTo: f.Email,
		Subject: "New Business Submission: " + f.BusinessName,
	}
	return msg, render(&msg, "submission", s.submissionData(f, report, string(draftJSON)))
}

// OwnerConfirmationEmail renders the thank-you message sent to the submitter
func (s *Service) OwnerConfirmationEmail(f model.BusinessSubmission) (Message, error) {
	msg := Message{
		From:    s.from(),
		To:      f.Email,
		ReplyTo: s.cfg.FromEmail,
		Subject: fmt.Sprintf("Thank you for submitting %s to %s", f.BusinessName, s.siteName),
	}
	return msg, render(&msg, "confirmation", s.submissionData(f, directory.Report{}, ""))
}

func (s *Service) submissionData(f model.BusinessSubmission, report directory.Report, draftJSON string) submissionData {
	return submissionData{
		SiteName:     s.siteName,
		DirectoryURL: s.cfg.DirectoryURL,
		ReplyTo:      s.cfg.FromEmail,
		Form:         f,
		Report:       report,
		DraftJSON:    draftJSON,
	}
}

func render(msg *Message, name string, data any) error {
	var html, text bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, name+".html", data); err != nil {
		return fmt.Errorf("render %s html: %w", name, err)
	}
	if err := textTemplates.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return fmt.Errorf("render %s text: %w", name, err)
	}
	msg.HTML = html.String()
	msg.Text = text.String()
	return nil
}

// Dispatch sends every message, or only logs them when delivery is disabled.
// It stops at the first failure.
func (s *Service) Dispatch(ctx context.Context, msgs ...Message) error {
	if !s.cfg.Enabled {
		log.Debug().Int("messages", len(msgs)).Msg("Email delivery disabled, messages discarded")
		return nil
	}
	for _, msg := range msgs {
		if err := s.sender.Send(ctx, msg); err != nil {
			return fmt.Errorf("send %q: %w", msg.Subject, err)
		}
	}
	return nil
}
