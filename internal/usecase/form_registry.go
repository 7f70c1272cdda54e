package usecase

import (
	"portfolio-backend/internal/domain"
	"sync"
	"time"
)

// FormRegistry keeps one contact form per visitor so a visitor cannot run
// two submissions at once.
type FormRegistry struct {
	mu    sync.Mutex
	forms map[string]*registeredForm
	ttl   time.Duration
	now   func() time.Time
}

type registeredForm struct {
	form     *domain.ContactForm
	lastSeen time.Time
}

// NewFormRegistry creates a registry; idle forms unused for ttl are swept
func NewFormRegistry(ttl time.Duration) *FormRegistry {
	return &FormRegistry{
		forms: make(map[string]*registeredForm),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Form returns the visitor's form, creating it on first use
func (r *FormRegistry) Form(visitorID string) *domain.ContactForm {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.forms[visitorID]
	if !ok {
		entry = &registeredForm{form: domain.NewContactForm()}
		r.forms[visitorID] = entry
	}
	entry.lastSeen = r.now()
	return entry.form
}

// Len returns the number of tracked forms
func (r *FormRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Sweep drops idle forms not used within the ttl and returns how many were removed
func (r *FormRegistry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, entry := range r.forms {
		if entry.lastSeen.Before(cutoff) && entry.form.State() == domain.StateIdle {
			delete(r.forms, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep on a ticker until stop is closed
func (r *FormRegistry) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Sweep()
			case <-stop:
				return
			}
		}
	}()
}
