package domain

import (
	"context"
	"sync"
)

// ContactFormInput represents a contact form submission
type ContactFormInput struct {
	Name        string `json:"name" validate:"notblank"`
	Email       string `json:"email" validate:"notblank,contact_email"`
	PhoneNumber string `json:"phoneNumber" validate:"notblank"`
	Message     string `json:"message" validate:"notblank"`
}

// FormField names a single editable field of the contact form
type FormField string

const (
	FieldName        FormField = "name"
	FieldEmail       FormField = "email"
	FieldPhoneNumber FormField = "phoneNumber"
	FieldMessage     FormField = "message"
)

// SubmissionState is the state of a single form instance
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateSending
)

func (s SubmissionState) String() string {
	if s == StateSending {
		return "sending"
	}
	return "idle"
}

func (s SubmissionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SubmissionOutcome reports how a submit attempt ended
type SubmissionOutcome int

const (
	// OutcomeRejected: validation failed or a send was already in flight; the relay was not called
	OutcomeRejected SubmissionOutcome = iota
	OutcomeSent
	OutcomeFailed
)

func (o SubmissionOutcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeFailed:
		return "failed"
	default:
		return "rejected"
	}
}

func (o SubmissionOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ContactForm holds the field values and submission state of one form instance.
// Fields cannot be edited while a submission is in flight.
type ContactForm struct {
	mu    sync.Mutex
	input ContactFormInput
	state SubmissionState
}

func NewContactForm() *ContactForm {
	return &ContactForm{}
}

// Input returns a copy of the current field values
func (f *ContactForm) Input() ContactFormInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

func (f *ContactForm) State() SubmissionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetField updates one field. Rejected while sending.
func (f *ContactForm) SetField(field FormField, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSending {
		return ErrSubmissionInProgress
	}

	switch field {
	case FieldName:
		f.input.Name = value
	case FieldEmail:
		f.input.Email = value
	case FieldPhoneNumber:
		f.input.PhoneNumber = value
	case FieldMessage:
		f.input.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Fill replaces all four fields at once. Rejected while sending.
func (f *ContactForm) Fill(in ContactFormInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSending {
		return ErrSubmissionInProgress
	}
	f.input = in
	return nil
}

// BeginSending runs check against the current values and, if it passes,
// moves Idle -> Sending and returns the values to send. The check and the
// transition happen under one lock so the sent values are the checked ones.
// check runs with the form locked and must not call back into the form.
func (f *ContactForm) BeginSending(check func(ContactFormInput) error) (ContactFormInput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSending {
		return ContactFormInput{}, ErrSubmissionInProgress
	}
	return f.begin(check)
}

// BeginSendingWith replaces the fields with in and then behaves like
// BeginSending, all under one lock. The fields keep in even when check fails.
func (f *ContactForm) BeginSendingWith(in ContactFormInput, check func(ContactFormInput) error) (ContactFormInput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSending {
		return ContactFormInput{}, ErrSubmissionInProgress
	}
	f.input = in
	return f.begin(check)
}

func (f *ContactForm) begin(check func(ContactFormInput) error) (ContactFormInput, error) {
	if check != nil {
		if err := check(f.input); err != nil {
			return ContactFormInput{}, err
		}
	}
	f.state = StateSending
	return f.input, nil
}

// Settle moves Sending -> Idle. A confirmed send clears every field.
func (f *ContactForm) Settle(sent bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if sent {
		f.input = ContactFormInput{}
	}
	f.state = StateIdle
}

// NotificationKind selects how a notification is rendered
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is a transient, user-facing status message
type Notification struct {
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
}

// Notifier displays notifications to the user
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, n Notification)

func (fn NotifierFunc) Notify(ctx context.Context, n Notification) {
	fn(ctx, n)
}

// RelayMessage is the payload handed to the mail relay
type RelayMessage struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
	Title       string `json:"title"`
	Time        string `json:"time"`
	ReplyTo     string `json:"reply_to"`
}

// MailRelay delivers a contact message through a third-party service
type MailRelay interface {
	Send(ctx context.Context, msg RelayMessage) error
}

// ContactUsecase defines the contact form operations
type ContactUsecase interface {
	// Validate checks the input and notifies the user on failure
	Validate(ctx context.Context, in ContactFormInput, n Notifier) error
	// Submit validates the form, sends it through the relay and reports the outcome
	Submit(ctx context.Context, form *ContactForm, n Notifier) (SubmissionOutcome, error)
	// SubmitWith fills the form with in and submits it in one step
	SubmitWith(ctx context.Context, form *ContactForm, in ContactFormInput, n Notifier) (SubmissionOutcome, error)
}
