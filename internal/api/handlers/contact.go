package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"folio/internal/api/dto/v1/contact"
	"folio/internal/api/validation"
	"folio/internal/config"
	"folio/internal/logging"
	"folio/internal/ratelimit"
	"folio/internal/service"
	"folio/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler is the trust boundary of the contact pipeline. Everything
// in the request is treated as adversarial until validated.
type ContactHandler struct {
	cfg       *config.Config
	limiter   ratelimit.Limiter
	verifier  service.TokenVerifier
	mailer    service.Mailer
	validator *validation.ContactValidator
	now       func() time.Time
}

// NewContactHandler creates a contact handler. The limiter, verifier and
// mailer are interfaces so deployments (and tests) can swap the backing
// implementations without touching the pipeline.
func NewContactHandler(cfg *config.Config, limiter ratelimit.Limiter, verifier service.TokenVerifier, mailer service.Mailer) *ContactHandler {
	return &ContactHandler{
		cfg:       cfg,
		limiter:   limiter,
		verifier:  verifier,
		mailer:    mailer,
		validator: validation.NewContactValidator(),
		now:       time.Now,
	}
}

// contactError writes the flat error body of the contact endpoint and logs
// the rejection. The endpoint's response shapes are a public contract, so
// it does not use the API envelope.
func (h *ContactHandler) contactError(c *gin.Context, status int, message string, err error) {
	logging.GetGlobalLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		utils.GetRealIP(c),
		status,
		message,
		err,
	)
	c.JSON(status, contact.ContactErrorResponse{Error: message})
}

// Submit handles POST /api/contact. The pipeline short-circuits on the
// first failure: configuration, rate limit, body parse, field validation,
// token verification, then delivery.
func (h *ContactHandler) Submit(c *gin.Context) {
	// Operator misconfiguration is checked before touching the payload;
	// it is a server-class failure, not a client error.
	if !h.cfg.EmailConfigured() {
		h.contactError(c, http.StatusInternalServerError, "Email service is not configured.", nil)
		return
	}
	if !h.cfg.RecaptchaConfigured() {
		h.contactError(c, http.StatusInternalServerError, "reCAPTCHA is not configured.", nil)
		return
	}

	ip := utils.GetRealIP(c)
	if res := h.limiter.Allow(ip, h.now()); !res.Allowed {
		c.Header("Retry-After", strconv.Itoa(ratelimit.RetryAfterSeconds(res.RetryAfter)))
		h.contactError(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
		return
	}

	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.contactError(c, http.StatusBadRequest, "Invalid request body.", err)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.contactError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	// Verification fails closed: a provider outage rejects the request.
	// Failure reasons beyond action/score are deliberately collapsed into
	// one message so bots cannot tune against them.
	if err := h.verifier.VerifyToken(c.Request.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, service.ErrActionMismatch):
			h.contactError(c, http.StatusBadRequest, "reCAPTCHA action mismatch.", err)
		case errors.Is(err, service.ErrScoreTooLow):
			h.contactError(c, http.StatusBadRequest, "reCAPTCHA score too low.", err)
		default:
			h.contactError(c, http.StatusBadRequest, "reCAPTCHA verification failed.", err)
		}
		return
	}

	msg := service.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}
	if err := h.mailer.SendContactMessage(c.Request.Context(), msg); err != nil {
		h.contactError(c, http.StatusInternalServerError, "Failed to send email.", err)
		return
	}

	c.JSON(http.StatusOK, contact.ContactResponse{OK: true})
}
