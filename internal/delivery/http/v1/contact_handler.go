package v1

import (
	"context"
	"errors"
	"net/http"
	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/audit"
	"portfolio-backend/pkg/logger"
	"sync"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	forms     *usecase.FormRegistry
	audit     *audit.Logger
}

// ContactResult is returned for every submit attempt
type ContactResult struct {
	Outcome       domain.SubmissionOutcome `json:"outcome" swaggertype:"string" enums:"sent,failed,rejected"`
	State         domain.SubmissionState   `json:"state" swaggertype:"string" enums:"idle,sending"`
	Form          domain.ContactFormInput  `json:"form"`
	Notifications []domain.Notification    `json:"notifications"`
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, forms *usecase.FormRegistry, auditLog *audit.Logger, mw ...gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
		forms:     forms,
		audit:     auditLog,
	}

	public.POST("/contact", append(mw, handler.SubmitContact)...)
}

// notificationCollector gathers the notifications raised during one request
type notificationCollector struct {
	mu    sync.Mutex
	items []domain.Notification
}

func (n *notificationCollector) Notify(_ context.Context, note domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, note)
}

func (n *notificationCollector) list() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Notification{}, n.items...)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates the form and forwards it to the mail relay. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactFormInput  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=ContactResult}
// @Failure      400      {object}  response.Response{data=ContactResult}
// @Failure      409      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response{data=ContactResult}
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactFormInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	visitorID := middleware.GetVisitorID(c)
	if visitorID == "" {
		visitorID = c.ClientIP()
	}
	requestID := middleware.GetRequestID(c)

	form := h.forms.Form(visitorID)

	// The relay call outlives a client disconnect
	ctx := context.WithoutCancel(c.Request.Context())

	notes := &notificationCollector{}
	outcome, err := h.contactUC.SubmitWith(ctx, form, req, notes)

	result := ContactResult{
		Outcome:       outcome,
		State:         form.State(),
		Form:          form.Input(),
		Notifications: notes.list(),
	}

	switch {
	case err == nil:
		h.audit.LogContact(ctx, audit.EventContactSent, req.Email, c.ClientIP(), requestID, nil)
		response.Success(c, http.StatusOK, usecase.NotifySent.Title, result)

	case errors.Is(err, domain.ErrMissingFields), errors.Is(err, domain.ErrInvalidEmail):
		h.audit.LogContact(ctx, audit.EventContactValidationFailed, req.Email, c.ClientIP(), requestID,
			map[string]interface{}{"reason": err.Error()})
		c.Error(apperror.New(http.StatusBadRequest, result.firstTitle(), err).WithData(result))

	case errors.Is(err, domain.ErrSubmissionInProgress):
		h.rejectInFlight(c, req.Email, requestID)

	case errors.Is(err, domain.ErrRelayFailure):
		logger.Log.Error("Contact relay failed", "request_id", requestID, "error", err)
		h.audit.LogContact(ctx, audit.EventContactRelayFailed, req.Email, c.ClientIP(), requestID, nil)
		c.Error(apperror.BadGateway(usecase.NotifyFailed.Description, nil).WithData(result))

	default:
		c.Error(apperror.Internal(err))
	}
}

func (h *ContactHandler) rejectInFlight(c *gin.Context, email, requestID string) {
	h.audit.LogContact(c.Request.Context(), audit.EventContactInFlight, email, c.ClientIP(), requestID, nil)
	c.Error(apperror.Conflict("Your previous message is still being sent"))
}

func (r ContactResult) firstTitle() string {
	if len(r.Notifications) > 0 {
		return r.Notifications[0].Title
	}
	return "Invalid contact form"
}
