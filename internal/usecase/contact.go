package usecase

import (
	"context"
	"errors"
	"fmt"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/validation"
	"time"

	"github.com/go-playground/validator/v10"
)

// ContactSubject is the fixed title sent with every contact message
const ContactSubject = "Portfolio Contact"

// contactTimeLayout matches an en-US locale date-time string, e.g. "10/19/2026, 4:28:00 PM"
const contactTimeLayout = "1/2/2006, 3:04:05 PM"

// Notifications shown by the contact flow
var (
	NotifyMissingFields = domain.Notification{
		Kind:        domain.NotificationError,
		Title:       "Missing fields",
		Description: "Please fill in name, email, phone number, and message.",
	}
	NotifyInvalidEmail = domain.Notification{
		Kind:        domain.NotificationError,
		Title:       "Invalid email",
		Description: "Please enter a valid email address.",
	}
	NotifySent = domain.Notification{
		Kind:        domain.NotificationSuccess,
		Title:       "Message sent!",
		Description: "Thanks for reaching out. I will get back to you shortly.",
	}
	NotifyFailed = domain.Notification{
		Kind:        domain.NotificationError,
		Title:       "Failed to send",
		Description: "Something went wrong while sending your message. Please try again later.",
	}
)

type contactUsecase struct {
	relay    domain.MailRelay
	validate *validator.Validate
	now      func() time.Time
}

// ContactOption configures the contact usecase
type ContactOption func(*contactUsecase)

// WithClock overrides the time source used for the message timestamp
func WithClock(now func() time.Time) ContactOption {
	return func(uc *contactUsecase) { uc.now = now }
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(relay domain.MailRelay, validate *validator.Validate, opts ...ContactOption) domain.ContactUsecase {
	if validate == nil {
		validate = validation.New()
	}
	uc := &contactUsecase{
		relay:    relay,
		validate: validate,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Validate checks the input and notifies the user about the first problem found
func (uc *contactUsecase) Validate(ctx context.Context, in domain.ContactFormInput, n domain.Notifier) error {
	err := uc.check(in)
	notifyInvalid(ctx, n, err)
	return err
}

func notifyInvalid(ctx context.Context, n domain.Notifier, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		notify(ctx, n, NotifyMissingFields)
	case errors.Is(err, domain.ErrInvalidEmail):
		notify(ctx, n, NotifyInvalidEmail)
	}
}

func (uc *contactUsecase) check(in domain.ContactFormInput) error {
	err := uc.validate.Struct(in)
	if err == nil {
		return nil
	}
	// Missing fields win over a malformed email
	if validation.HasTag(err, "notblank") {
		return domain.ErrMissingFields
	}
	if validation.HasTag(err, "contact_email") {
		return domain.ErrInvalidEmail
	}
	return fmt.Errorf("validate contact input: %w", err)
}

// Submit sends the form through the relay. The form is Sending only for the
// duration of the relay call and always ends Idle.
func (uc *contactUsecase) Submit(ctx context.Context, form *domain.ContactForm, n domain.Notifier) (domain.SubmissionOutcome, error) {
	in, err := form.BeginSending(uc.check)
	return uc.finish(ctx, form, in, err, n)
}

// SubmitWith is Submit on in, filled into the form under the same lock that
// starts the send, so a concurrent fill cannot swap the content.
func (uc *contactUsecase) SubmitWith(ctx context.Context, form *domain.ContactForm, in domain.ContactFormInput, n domain.Notifier) (domain.SubmissionOutcome, error) {
	sending, err := form.BeginSendingWith(in, uc.check)
	return uc.finish(ctx, form, sending, err, n)
}

// finish notifies and sends once the form lock is released
func (uc *contactUsecase) finish(ctx context.Context, form *domain.ContactForm, in domain.ContactFormInput, err error, n domain.Notifier) (domain.SubmissionOutcome, error) {
	if err != nil {
		notifyInvalid(ctx, n, err)
		return domain.OutcomeRejected, err
	}

	msg := domain.RelayMessage{
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Message:     in.Message,
		Title:       ContactSubject,
		Time:        uc.now().Format(contactTimeLayout),
		ReplyTo:     in.Email,
	}

	if err := uc.send(ctx, msg); err != nil {
		form.Settle(false)
		notify(ctx, n, NotifyFailed)
		return domain.OutcomeFailed, fmt.Errorf("%w: %v", domain.ErrRelayFailure, err)
	}

	form.Settle(true)
	notify(ctx, n, NotifySent)
	return domain.OutcomeSent, nil
}

// send turns relay panics into errors so the form never stays Sending
func (uc *contactUsecase) send(ctx context.Context, msg domain.RelayMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("relay panic: %v", r)
		}
	}()
	return uc.relay.Send(ctx, msg)
}

func notify(ctx context.Context, n domain.Notifier, note domain.Notification) {
	if n != nil {
		n.Notify(ctx, note)
	}
}
