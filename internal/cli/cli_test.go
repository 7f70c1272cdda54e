package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relayFunc func(ctx context.Context, msg domain.RelayMessage) error

func (f relayFunc) Send(ctx context.Context, msg domain.RelayMessage) error {
	return f(ctx, msg)
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func builtinCatalog() (*config.Config, error) {
	return &config.Config{}, nil
}

func TestProjectsCmd(t *testing.T) {
	t.Run("Should print the filtered catalog", func(t *testing.T) {
		out, err := run(t, projectsCmd(builtinCatalog), "--filter", "cpp")
		require.NoError(t, err)
		assert.Contains(t, out, "C++ (1)")
		assert.Contains(t, out, "[15]")
		assert.NotContains(t, out, "[1]")
	})

	t.Run("Should reject an unknown filter", func(t *testing.T) {
		_, err := run(t, projectsCmd(builtinCatalog), "--filter", "cobol")
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})
}

func TestSkillsCmd(t *testing.T) {
	out, err := run(t, skillsCmd(builtinCatalog))
	require.NoError(t, err)
	assert.Contains(t, out, "Tools & DevOps")
	assert.Regexp(t, `Laravel\s+95%`, out)
	assert.Contains(t, out, "Also: HTML, CSS")
}

func TestContactCmd(t *testing.T) {
	t.Run("Should print the success notification", func(t *testing.T) {
		var got domain.RelayMessage
		relay := relayFunc(func(_ context.Context, msg domain.RelayMessage) error {
			got = msg
			return nil
		})

		out, err := run(t, contactCmd(func() (domain.MailRelay, error) { return relay, nil }),
			"--name", "Ann", "--email", "ann@x.io", "--phone", "555", "--message", "Hi")
		require.NoError(t, err)
		assert.Contains(t, out, "[success] Message sent!")
		assert.Equal(t, "Ann", got.Name)
	})

	t.Run("Should print validation notifications without sending", func(t *testing.T) {
		relay := relayFunc(func(context.Context, domain.RelayMessage) error {
			t.Fatal("relay must not be called")
			return nil
		})

		out, err := run(t, contactCmd(func() (domain.MailRelay, error) { return relay, nil }),
			"--name", "Ann", "--email", "bob@", "--phone", "555", "--message", "Hi")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.Contains(t, out, "[error] Invalid email: Please enter a valid email address.")
	})

	t.Run("Should surface relay failures", func(t *testing.T) {
		relay := relayFunc(func(context.Context, domain.RelayMessage) error { return errors.New("down") })

		out, err := run(t, contactCmd(func() (domain.MailRelay, error) { return relay, nil }),
			"--name", "Ann", "--email", "ann@x.io", "--phone", "555", "--message", "Hi")
		assert.ErrorIs(t, err, domain.ErrRelayFailure)
		assert.Contains(t, out, "[error] Failed to send")
	})
}

func TestRootCmd(t *testing.T) {
	cmd := NewRootCmd()
	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"projects", "skills", "contact"})
}
