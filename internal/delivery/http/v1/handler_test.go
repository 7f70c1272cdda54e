package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/catalog"
	"portfolio-backend/internal/repository/sqlite"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/audit"
	"portfolio-backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type relayFunc func(ctx context.Context, msg domain.RelayMessage) error

func (f relayFunc) Send(ctx context.Context, msg domain.RelayMessage) error {
	return f(ctx, msg)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type contactData struct {
	Outcome       string                  `json:"outcome"`
	State         string                  `json:"state"`
	Form          domain.ContactFormInput `json:"form"`
	Notifications []domain.Notification   `json:"notifications"`
}

func newRouter(t *testing.T, relay domain.MailRelay) http.Handler {
	t.Helper()

	ctx := context.Background()
	db, err := database.NewSQLiteConnection(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	settingsRepo, err := sqlite.NewSettingsRepository(ctx, db)
	require.NoError(t, err)

	return v1.NewRouter(v1.RouterDeps{
		ContactUC:  usecase.NewContactUsecase(relay, nil),
		ProjectUC:  usecase.NewProjectUsecase(catalog.NewStaticRepository(catalog.Default())),
		SkillUC:    usecase.NewSkillUsecase(catalog.NewStaticSkillRepository(catalog.DefaultSkills())),
		SettingsUC: usecase.NewSettingsUsecase(settingsRepo),
		HealthUC: usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
			"database": db.PingContext,
		}),
		Forms: usecase.NewFormRegistry(time.Minute),
		Audit: audit.Nop(),
		Config: &config.Config{
			GinMode:                gin.TestMode,
			FrontendURL:            "http://localhost:5173",
			RateLimitWindowSeconds: 60,
			ContactRateLimit:       100,
			GlobalRateLimit:        1000,
		},
	})
}

func do(t *testing.T, h http.Handler, method, path string, body any, visitor string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if visitor != "" {
		req.AddCookie(&http.Cookie{Name: middleware.VisitorCookieName, Value: visitor})
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func validForm() domain.ContactFormInput {
	return domain.ContactFormInput{Name: "Ann", Email: "ann@x.io", PhoneNumber: "555", Message: "Hi"}
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should send and return a cleared form", func(t *testing.T) {
		var sent domain.RelayMessage
		h := newRouter(t, relayFunc(func(_ context.Context, msg domain.RelayMessage) error {
			sent = msg
			return nil
		}))

		w, env := do(t, h, http.MethodPost, "/v1/contact", validForm(), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
		assert.Equal(t, "Message sent!", env.Message)

		var data contactData
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "sent", data.Outcome)
		assert.Equal(t, "idle", data.State)
		assert.Equal(t, domain.ContactFormInput{}, data.Form)
		assert.Equal(t, []domain.Notification{usecase.NotifySent}, data.Notifications)

		assert.Equal(t, "Portfolio Contact", sent.Title)
		assert.Equal(t, "ann@x.io", sent.ReplyTo)
	})

	t.Run("Should return 400 with the notification for an invalid email", func(t *testing.T) {
		called := false
		h := newRouter(t, relayFunc(func(context.Context, domain.RelayMessage) error {
			called = true
			return nil
		}))

		in := validForm()
		in.Email = "bob.com"
		w, env := do(t, h, http.MethodPost, "/v1/contact", in, "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid email", env.Message)
		assert.False(t, called)

		var data contactData
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "rejected", data.Outcome)
		assert.Equal(t, in, data.Form)
		assert.Equal(t, []domain.Notification{usecase.NotifyInvalidEmail}, data.Notifications)
	})

	t.Run("Should return 400 for missing fields", func(t *testing.T) {
		h := newRouter(t, relayFunc(func(context.Context, domain.RelayMessage) error { return nil }))

		w, env := do(t, h, http.MethodPost, "/v1/contact", domain.ContactFormInput{Name: "Ann"}, "", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing fields", env.Message)
	})

	t.Run("Should return 502 and keep the fields when the relay fails", func(t *testing.T) {
		h := newRouter(t, relayFunc(func(context.Context, domain.RelayMessage) error {
			return errors.New("emailjs: status 500")
		}))

		w, env := do(t, h, http.MethodPost, "/v1/contact", validForm(), "", nil)
		require.Equal(t, http.StatusBadGateway, w.Code)
		assert.False(t, env.Success)
		assert.NotContains(t, w.Body.String(), "emailjs")

		var data contactData
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "failed", data.Outcome)
		assert.Equal(t, "idle", data.State)
		assert.Equal(t, validForm(), data.Form)
		assert.Equal(t, []domain.Notification{usecase.NotifyFailed}, data.Notifications)
	})

	t.Run("Should return 409 while the same visitor has a send in flight", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		h := newRouter(t, relayFunc(func(context.Context, domain.RelayMessage) error {
			close(started)
			<-release
			return nil
		}))
		visitor := uuid.NewString()

		done := make(chan int, 1)
		go func() {
			w := httptest.NewRecorder()
			raw, _ := json.Marshal(validForm())
			req := httptest.NewRequest(http.MethodPost, "/v1/contact", bytes.NewReader(raw))
			req.Header.Set("Content-Type", "application/json")
			req.AddCookie(&http.Cookie{Name: middleware.VisitorCookieName, Value: visitor})
			h.ServeHTTP(w, req)
			done <- w.Code
		}()
		<-started

		w, _ := do(t, h, http.MethodPost, "/v1/contact", validForm(), visitor, nil)
		assert.Equal(t, http.StatusConflict, w.Code)

		close(release)
		assert.Equal(t, http.StatusOK, <-done)
	})

	t.Run("Should reject a malformed body", func(t *testing.T) {
		h := newRouter(t, relayFunc(func(context.Context, domain.RelayMessage) error { return nil }))

		w, env := do(t, h, http.MethodPost, "/v1/contact", "{", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid request body", env.Message)
	})
}

func TestProjects(t *testing.T) {
	h := newRouter(t, relayFunc(func(context.Context, domain.RelayMessage) error { return nil }))

	t.Run("Should filter by category in catalog order", func(t *testing.T) {
		w, env := do(t, h, http.MethodGet, "/v1/projects?filter=backend", nil, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var list v1.ProjectList
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, "backend", list.Filter)
		assert.Equal(t, 5, list.Total)

		ids := make([]int, 0, len(list.Projects))
		for _, p := range list.Projects {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []int{1, 11, 12, 13, 14}, ids)
	})

	t.Run("Should list everything without a filter", func(t *testing.T) {
		_, env := do(t, h, http.MethodGet, "/v1/projects", nil, "", nil)

		var list v1.ProjectList
		require.NoError(t, json.Unmarshal(env.Data, &list))
		assert.Equal(t, "all", list.Filter)
		assert.Equal(t, 15, list.Total)
	})

	t.Run("Should reject an unknown filter", func(t *testing.T) {
		w, _ := do(t, h, http.MethodGet, "/v1/projects?filter=rust", nil, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should return one project by id", func(t *testing.T) {
		w, env := do(t, h, http.MethodGet, "/v1/projects/15", nil, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var p domain.ProjectRecord
		require.NoError(t, json.Unmarshal(env.Data, &p))
		assert.Equal(t, domain.CategoryCpp, p.Category)

		w, _ = do(t, h, http.MethodGet, "/v1/projects/99", nil, "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w, _ = do(t, h, http.MethodGet, "/v1/projects/abc", nil, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Should list categories with counts", func(t *testing.T) {
		w, env := do(t, h, http.MethodGet, "/v1/projects/categories", nil, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var summaries []domain.CategorySummary
		require.NoError(t, json.Unmarshal(env.Data, &summaries))
		require.Len(t, summaries, 5)
		assert.Equal(t, "All", summaries[0].Label)
		assert.Equal(t, 15, summaries[0].Count)
	})
}

func TestSkills(t *testing.T) {
	h := newRouter(t, relayFunc(func(context.Context, domain.RelayMessage) error { return nil }))

	w, env := do(t, h, http.MethodGet, "/v1/skills", nil, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var set domain.SkillSet
	require.NoError(t, json.Unmarshal(env.Data, &set))
	require.Len(t, set.Categories, 3)
	assert.Equal(t, "Front-End Development", set.Categories[0].Title)
	assert.Equal(t, domain.Skill{Name: "HTML", Percentage: 95}, set.Categories[0].Skills[0])
	assert.Len(t, set.Badges, 30)
}

func TestTheme(t *testing.T) {
	h := newRouter(t, relayFunc(func(context.Context, domain.RelayMessage) error { return nil }))
	visitor := uuid.NewString()
	dark := map[string]string{v1.ColorSchemeHeader: "dark"}

	theme := func(env envelope) domain.ThemeSettings {
		var s domain.ThemeSettings
		require.NoError(t, json.Unmarshal(env.Data, &s))
		return s
	}

	_, env := do(t, h, http.MethodGet, "/v1/settings/theme", nil, visitor, dark)
	assert.Equal(t, domain.ThemeSettings{DarkMode: true, Source: domain.ThemeFromSystem}, theme(env))

	w, env := do(t, h, http.MethodPut, "/v1/settings/theme", map[string]bool{"dark_mode": false}, visitor, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.ThemeSettings{DarkMode: false, Source: domain.ThemeFromStorage}, theme(env))

	_, env = do(t, h, http.MethodGet, "/v1/settings/theme", nil, visitor, dark)
	assert.Equal(t, domain.ThemeSettings{DarkMode: false, Source: domain.ThemeFromStorage}, theme(env))

	_, env = do(t, h, http.MethodPost, "/v1/settings/theme/toggle", nil, visitor, nil)
	assert.True(t, theme(env).DarkMode)

	w, _ = do(t, h, http.MethodPut, "/v1/settings/theme", map[string]any{}, visitor, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A different visitor sees the default
	_, env = do(t, h, http.MethodGet, "/v1/settings/theme", nil, uuid.NewString(), nil)
	assert.Equal(t, domain.ThemeSettings{DarkMode: false, Source: domain.ThemeFromDefault}, theme(env))
}

func TestHealth(t *testing.T) {
	h := newRouter(t, relayFunc(func(context.Context, domain.RelayMessage) error { return nil }))

	w, env := do(t, h, http.MethodGet, "/v1/health", nil, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, string(env.Data))
}
