package domain_test

import (
	"encoding/json"
	"errors"
	"testing"

	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactForm(t *testing.T) {
	t.Run("Should edit fields while idle", func(t *testing.T) {
		f := domain.NewContactForm()
		require.NoError(t, f.SetField(domain.FieldName, "Ann"))
		require.NoError(t, f.SetField(domain.FieldEmail, "ann@x.io"))
		require.NoError(t, f.SetField(domain.FieldPhoneNumber, "1"))
		require.NoError(t, f.SetField(domain.FieldMessage, "hi"))
		assert.Equal(t, domain.ContactFormInput{Name: "Ann", Email: "ann@x.io", PhoneNumber: "1", Message: "hi"}, f.Input())
		assert.ErrorIs(t, f.SetField("subject", "x"), domain.ErrUnknownField)
	})

	t.Run("Should stay idle when the check fails", func(t *testing.T) {
		f := domain.NewContactForm()
		boom := errors.New("invalid")
		_, err := f.BeginSending(func(domain.ContactFormInput) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, domain.StateIdle, f.State())
	})

	t.Run("Should lock fields while sending", func(t *testing.T) {
		f := domain.NewContactForm()
		require.NoError(t, f.Fill(domain.ContactFormInput{Name: "Ann"}))

		in, err := f.BeginSending(nil)
		require.NoError(t, err)
		assert.Equal(t, "Ann", in.Name)
		assert.Equal(t, domain.StateSending, f.State())

		assert.ErrorIs(t, f.Fill(domain.ContactFormInput{}), domain.ErrSubmissionInProgress)
		assert.ErrorIs(t, f.SetField(domain.FieldName, "Eve"), domain.ErrSubmissionInProgress)
		_, err = f.BeginSending(nil)
		assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)
	})

	t.Run("Should clear on a confirmed send and keep values on failure", func(t *testing.T) {
		f := domain.NewContactForm()
		in := domain.ContactFormInput{Name: "Ann", Email: "a@b.co", PhoneNumber: "1", Message: "m"}
		require.NoError(t, f.Fill(in))

		_, err := f.BeginSending(nil)
		require.NoError(t, err)
		f.Settle(false)
		assert.Equal(t, in, f.Input())
		assert.Equal(t, domain.StateIdle, f.State())

		_, err = f.BeginSending(nil)
		require.NoError(t, err)
		f.Settle(true)
		assert.Equal(t, domain.ContactFormInput{}, f.Input())
		assert.Equal(t, domain.StateIdle, f.State())
	})
}

func TestContactFormBeginSendingWith(t *testing.T) {
	t.Run("Should fill before checking and keep the values on failure", func(t *testing.T) {
		f := domain.NewContactForm()
		in := domain.ContactFormInput{Name: "Ann"}
		var checked domain.ContactFormInput

		_, err := f.BeginSendingWith(in, func(got domain.ContactFormInput) error {
			checked = got
			return domain.ErrMissingFields
		})
		assert.ErrorIs(t, err, domain.ErrMissingFields)
		assert.Equal(t, in, checked)
		assert.Equal(t, in, f.Input())
		assert.Equal(t, domain.StateIdle, f.State())
	})

	t.Run("Should leave an in-flight form untouched", func(t *testing.T) {
		f := domain.NewContactForm()
		first := domain.ContactFormInput{Name: "Ann"}
		sending, err := f.BeginSendingWith(first, nil)
		require.NoError(t, err)
		assert.Equal(t, first, sending)

		_, err = f.BeginSendingWith(domain.ContactFormInput{Name: "Eve"}, nil)
		assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)
		assert.Equal(t, first, f.Input())
		assert.Equal(t, domain.StateSending, f.State())
	})
}

func TestSubmissionStateJSON(t *testing.T) {
	b, err := json.Marshal(map[string]any{"state": domain.StateSending, "outcome": domain.OutcomeFailed})
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"sending","outcome":"failed"}`, string(b))
}

func TestParseColorScheme(t *testing.T) {
	assert.Equal(t, domain.ColorSchemeDark, domain.ParseColorScheme(`"dark"`))
	assert.Equal(t, domain.ColorSchemeLight, domain.ParseColorScheme(" Light "))
	assert.Equal(t, domain.ColorSchemeUnknown, domain.ParseColorScheme("no-preference"))
}
