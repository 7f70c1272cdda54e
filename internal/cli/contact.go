package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/relay"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/validation"
)

type relayFactory func() (domain.MailRelay, error)

// configuredRelay builds the relay selected by RELAY_DRIVER
func configuredRelay(load configLoader) relayFactory {
	return func() (domain.MailRelay, error) {
		cfg, err := load()
		if err != nil {
			return nil, err
		}
		return relay.New(cfg)
	}
}

func contactCmd(newRelay relayFactory) *cobra.Command {
	var in domain.ContactFormInput

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact message through the configured mail relay",
		RunE: func(c *cobra.Command, _ []string) error {
			mailRelay, err := newRelay()
			if err != nil {
				return err
			}

			form := domain.NewContactForm()
			if err := form.Fill(in); err != nil {
				return err
			}

			uc := usecase.NewContactUsecase(mailRelay, validation.New())
			outcome, err := uc.Submit(c.Context(), form, writerNotifier(c.OutOrStdout()))
			if err != nil {
				return err
			}
			if outcome != domain.OutcomeSent {
				return fmt.Errorf("contact message not sent: %s", outcome)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Sender name")
	cmd.Flags().StringVar(&in.Email, "email", "", "Sender email")
	cmd.Flags().StringVar(&in.PhoneNumber, "phone", "", "Sender phone number")
	cmd.Flags().StringVar(&in.Message, "message", "", "Message body")
	return cmd
}

// writerNotifier prints notifications as "[kind] title: description"
func writerNotifier(w io.Writer) domain.Notifier {
	return domain.NotifierFunc(func(_ context.Context, n domain.Notification) {
		fmt.Fprintf(w, "[%s] %s: %s\n", n.Kind, n.Title, n.Description)
	})
}
