package validation

import (
	"regexp"
	"strings"

	"folio/internal/api/dto/v1/contact"

	"github.com/go-playground/validator/v10"
)

// emailRegex is the minimal pattern the contact form accepts: a
// non-whitespace run, @, another run, a dot, another run.
var emailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)

// RegisterValidators registers custom validators used by the API
func RegisterValidators(v *validator.Validate) {
	// contactemail also rejects CR/LF anywhere in the value: the raw
	// address becomes the email's Reply-To header, so line breaks must
	// never reach the mailer.
	_ = v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if strings.ContainsAny(value, "\r\n") {
			return false
		}
		return emailRegex.MatchString(value)
	})
}

// contactFields mirrors ContactRequest with the bounds from the data model.
// Field order fixes the order per-field errors are reported in.
type contactFields struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,max=320,contactemail"`
	Company string `validate:"required,max=120"`
	Message string `validate:"required,max=2000"`
	Token   string `validate:"required"`
}

// Client-facing validation errors. The exact strings are part of the
// endpoint contract.
const (
	MsgMissingFields  = "Missing required fields."
	MsgInvalidName    = "Invalid name."
	MsgInvalidEmail   = "Invalid email."
	MsgInvalidCompany = "Invalid company."
	MsgInvalidMessage = "Invalid message length."
)

var fieldMessages = map[string]string{
	"Name":    MsgInvalidName,
	"Email":   MsgInvalidEmail,
	"Company": MsgInvalidCompany,
	"Message": MsgInvalidMessage,
}

// ValidationError carries the client-facing message for a rejected request.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ContactValidator validates contact form submissions
type ContactValidator struct {
	validate *validator.Validate
}

// NewContactValidator creates a validator with the custom rules registered
func NewContactValidator() *ContactValidator {
	v := validator.New()
	RegisterValidators(v)
	return &ContactValidator{validate: v}
}

// Validate trims all fields of req in place and checks presence, length
// ceilings and the email format. Any blank field is reported as missing
// fields, before any per-field violation; per-field violations are
// reported in declaration order.
func (cv *ContactValidator) Validate(req *contact.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Message = strings.TrimSpace(req.Message)
	req.Token = strings.TrimSpace(req.Token)

	err := cv.validate.Struct(contactFields{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
		Token:   req.Token,
	})
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Message: MsgMissingFields}
	}

	for _, fe := range errs {
		if fe.Tag() == "required" {
			return &ValidationError{Message: MsgMissingFields}
		}
	}

	if msg, ok := fieldMessages[errs[0].StructField()]; ok {
		return &ValidationError{Message: msg}
	}
	return &ValidationError{Message: MsgMissingFields}
}
