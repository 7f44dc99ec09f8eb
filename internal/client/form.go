// Package client implements the contact form controller: field state, the
// submission state machine and the human-verification handshake that runs
// before the form is posted to the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"folio/internal/api/dto/v1/contact"
)

// Action is the verification action label bound to every token this form
// requests. The server rejects tokens issued for any other action.
const Action = "contact_form"

// Status is the submission state of the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Messages surfaced without contacting the server.
const (
	msgMissingSiteKey  = "Missing reCAPTCHA site key."
	msgWidgetNotLoaded = "reCAPTCHA failed to load. Please refresh and try again."
	msgGenericFailure  = "Unable to send message."
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission has not finished. The caller's UI disablement is the primary
// guard; this keeps the invariant under programmatic use too.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// TokenSource issues a single-use verification token bound to an action.
// It stands in for the browser-side challenge widget.
type TokenSource interface {
	Token(ctx context.Context, action string) (string, error)
}

// Fields are the editable form fields.
type Fields struct {
	Name    string
	Email   string
	Company string
	Message string
}

// Form owns the field state and drives one submission at a time.
type Form struct {
	endpoint string
	siteKey  string
	tokens   TokenSource
	client   *http.Client

	mu      sync.Mutex
	fields  Fields
	status  Status
	errText string
}

// NewForm creates an idle form posting to endpoint. A nil tokens source
// models the verification widget failing to load.
func NewForm(endpoint, siteKey string, tokens TokenSource) *Form {
	return &Form{
		endpoint: endpoint,
		siteKey:  siteKey,
		tokens:   tokens,
		client:   http.DefaultClient,
		status:   StatusIdle,
	}
}

// WithHTTPClient overrides the transport. Used in tests.
func (f *Form) WithHTTPClient(c *http.Client) *Form {
	f.client = c
	return f
}

// Status returns the current submission state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// ErrorMessage returns the displayed error text, empty unless the form is
// in the error state.
func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errText
}

// Fields returns a copy of the current field values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// setField applies an edit. Editing in a terminal state returns the form
// to idle and clears the error without discarding the new value. Edits
// during submitting are ignored, mirroring disabled inputs.
func (f *Form) setField(apply func(*Fields)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == StatusSubmitting {
		return
	}

	apply(&f.fields)

	if f.status == StatusSuccess || f.status == StatusError {
		f.status = StatusIdle
		f.errText = ""
	}
}

func (f *Form) SetName(v string)    { f.setField(func(fl *Fields) { fl.Name = v }) }
func (f *Form) SetEmail(v string)   { f.setField(func(fl *Fields) { fl.Email = v }) }
func (f *Form) SetCompany(v string) { f.setField(func(fl *Fields) { fl.Company = v }) }
func (f *Form) SetMessage(v string) { f.setField(func(fl *Fields) { fl.Message = v }) }

// fail moves the form to the error state with the given message.
func (f *Form) fail(msg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusError
	f.errText = msg
	return errors.New(msg)
}

// Submit runs one submission to completion: verification handshake, POST,
// then the terminal state transition. It returns nil on success and the
// displayed error otherwise.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	f.status = StatusSubmitting
	f.errText = ""
	fields := f.fields
	f.mu.Unlock()

	// Local preconditions fail without contacting the server.
	if f.siteKey == "" {
		return f.fail(msgMissingSiteKey)
	}
	if f.tokens == nil {
		return f.fail(msgWidgetNotLoaded)
	}

	token, err := f.tokens.Token(ctx, Action)
	if err != nil {
		return f.fail(err.Error())
	}

	payload, err := json.Marshal(contact.ContactRequest{
		Name:    fields.Name,
		Email:   fields.Email,
		Company: fields.Company,
		Message: fields.Message,
		Token:   token,
	})
	if err != nil {
		return f.fail(msgGenericFailure)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(payload))
	if err != nil {
		return f.fail(msgGenericFailure)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return f.fail(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Best-effort parse of the server's error body; the server's
		// message is surfaced verbatim when present.
		var body contact.ContactErrorResponse
		msg := msgGenericFailure
		if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr == nil && body.Error != "" {
			msg = body.Error
		}
		return f.fail(msg)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = StatusSuccess
	f.fields = Fields{}
	return nil
}

// StatusMessage returns the text the page displays for the current state.
func (f *Form) StatusMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.status {
	case StatusSuccess:
		return "Thanks! Your message is on its way."
	case StatusError:
		if f.errText != "" {
			return f.errText
		}
		return "Something went wrong."
	default:
		return ""
	}
}
