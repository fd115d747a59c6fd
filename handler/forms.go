package handler

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/lexabu/woman-owned.com/email"
	"github.com/lexabu/woman-owned.com/forms"
	"github.com/lexabu/woman-owned.com/metrics"
	"github.com/lexabu/woman-owned.com/model"
	"github.com/lexabu/woman-owned.com/ratelimit"
	"github.com/lexabu/woman-owned.com/security"
	"github.com/rs/zerolog/log"
)

const maxFormBytes = 64 << 10

const (
	contactLimitedMsg    = "Too many messages sent. Please try again in 15 minutes."
	submissionLimitedMsg = "Too many submissions. Please try again in 15 minutes."
	contactSuccessMsg    = "Message sent successfully! We'll get back to you soon."
	submissionSuccessMsg = "Business submission received successfully!"
	contactFailedMsg     = "An error occurred while sending your message. Please try again."
	submissionFailedMsg  = "An error occurred while processing your submission. Please try again."
	invalidBodyMsg       = "Invalid request body"
)

// FormHandler serves the contact and business submission endpoints
type FormHandler struct {
	contact    *ratelimit.Limiter
	submission *ratelimit.Limiter
	email      *email.Service
	screener   *security.WebsiteScreener
	recorder   Recorder
	now        func() time.Time

	// logSubmitters adds names, addresses and message details to the
	// submission logs. Off in production.
	logSubmitters bool
}

// NewFormHandler wires the form endpoints. Each limiter gates exactly one endpoint.
// logSubmitters should only be set outside production.
func NewFormHandler(contact, submission *ratelimit.Limiter, mailer *email.Service, screener *security.WebsiteScreener, recorder Recorder, logSubmitters bool) *FormHandler {
	return &FormHandler{
		contact:       contact,
		submission:    submission,
		email:         mailer,
		screener:      screener,
		recorder:      recorderOrNop(recorder),
		now:           time.Now,
		logSubmitters: logSubmitters,
	}
}

// admit applies the limiter and writes the 429 when the client is over budget
func (h *FormHandler) admit(w http.ResponseWriter, r *http.Request, limiter *ratelimit.Limiter, form, rejectMsg string) bool {
	key := ratelimit.ClientKey(r)
	d := limiter.Check(r.Context(), key)
	if d.Allowed {
		return true
	}

	retry := int(math.Ceil(d.RetryAfter(h.now()).Seconds()))
	w.Header().Set("Retry-After", strconv.Itoa(retry))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	w.Header().Set("X-RateLimit-Remaining", "0")

	log.Warn().
		Str("form", form).
		Str("limiter", limiter.Name()).
		Str("client", key).
		Int("max_requests", limiter.Max()).
		Dur("window", limiter.Window()).
		Int("retry_after", retry).
		Msg("Form rate limit exceeded")
	h.recorder.ObserveForm(form, metrics.OutcomeLimited)
	SendFormResponse(w, http.StatusTooManyRequests, model.FormResponse{Success: false, Error: rejectMsg})
	return false
}

// decode reads one JSON object from the body
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

func (h *FormHandler) invalid(w http.ResponseWriter, form string, errs []string) {
	h.recorder.ObserveForm(form, metrics.OutcomeInvalid)
	SendFormResponse(w, http.StatusBadRequest, model.FormResponse{Success: false, Errors: errs})
}

func (h *FormHandler) badRequest(w http.ResponseWriter, form string, err error) {
	log.Debug().Err(err).Str("form", form).Msg("Rejected malformed form body")
	h.recorder.ObserveForm(form, metrics.OutcomeBadRequest)
	SendFormResponse(w, http.StatusBadRequest, model.FormResponse{Success: false, Error: invalidBodyMsg})
}

func (h *FormHandler) failed(w http.ResponseWriter, form, msg string, err error) {
	log.Error().Err(err).Str("form", form).Msg("Form processing failed")
	h.recorder.ObserveForm(form, metrics.OutcomeError)
	SendFormResponse(w, http.StatusInternalServerError, model.FormResponse{Success: false, Error: msg})
}

// Contact handles POST /api/contact
func (h *FormHandler) Contact(w http.ResponseWriter, r *http.Request) {
	const form = "contact"

	if !h.admit(w, r, h.contact, form, contactLimitedMsg) {
		return
	}

	var input model.ContactForm
	if err := decode(w, r, &input); err != nil {
		h.badRequest(w, form, err)
		return
	}

	clean, errs := forms.PrepareContact(input)
	if len(errs) > 0 {
		h.invalid(w, form, errs)
		return
	}

	msg, err := h.email.ContactEmail(clean)
	if err != nil {
		h.failed(w, form, contactFailedMsg, err)
		return
	}
	if err := h.email.Dispatch(r.Context(), msg); err != nil {
		h.failed(w, form, contactFailedMsg, err)
		return
	}

	event := log.Info().Str("form", form)
	if h.logSubmitters {
		event = event.
			Str("from", clean.Name).
			Str("email", clean.Email).
			Str("subject", clean.Subject).
			Str("message", clean.Message)
	}
	event.Msg("Contact form submission")
	h.recorder.ObserveForm(form, metrics.OutcomeAccepted)
	SendFormResponse(w, http.StatusOK, model.FormResponse{Success: true, Message: contactSuccessMsg})
}

// SubmitBusiness handles POST /api/submit-business
func (h *FormHandler) SubmitBusiness(w http.ResponseWriter, r *http.Request) {
	const form = "submission"

	if !h.admit(w, r, h.submission, form, submissionLimitedMsg) {
		return
	}

	var input model.BusinessSubmission
	if err := decode(w, r, &input); err != nil {
		h.badRequest(w, form, err)
		return
	}

	clean, errs := forms.PrepareSubmission(input)
	if len(errs) > 0 {
		h.invalid(w, form, errs)
		return
	}

	draft, report := forms.DraftRecord(clean, h.now())
	if pattern, flagged := h.screener.Screen(clean.Website); flagged {
		report.Warnings = append(report.Warnings, fmt.Sprintf("Website matches blocklist pattern %q, review before publishing", pattern))
		event := log.Warn().Str("pattern", pattern).Str("draft_slug", draft.Slug)
		if h.logSubmitters {
			event = event.Str("website", clean.Website)
		}
		event.Msg("Submitted website flagged")
	}

	adminMsg, err := h.email.SubmissionEmail(clean, draft, report)
	if err != nil {
		h.failed(w, form, submissionFailedMsg, err)
		return
	}
	ownerMsg, err := h.email.OwnerConfirmationEmail(clean)
	if err != nil {
		h.failed(w, form, submissionFailedMsg, err)
		return
	}
	if err := h.email.Dispatch(r.Context(), adminMsg, ownerMsg); err != nil {
		h.failed(w, form, submissionFailedMsg, err)
		return
	}

	event := log.Info().
		Str("form", form).
		Str("draft_slug", draft.Slug).
		Int("draft_warnings", len(report.Warnings))
	if h.logSubmitters {
		event = event.
			Str("business", clean.BusinessName).
			Str("owner", clean.OwnerName).
			Str("email", clean.Email).
			Str("website", clean.Website)
	}
	event.Msg("Business submission received")
	h.recorder.ObserveForm(form, metrics.OutcomeAccepted)
	SendFormResponse(w, http.StatusOK, model.FormResponse{Success: true, Message: submissionSuccessMsg})
}
