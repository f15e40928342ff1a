package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"

	gomail "github.com/wneessen/go-mail"

	"github.com/devcraft/portfolio-api/internal/config"
)

// smtpTransport delivers through a plain SMTP account, typically a Gmail
// address with an app password. It is the fallback when no API key is set.
type smtpTransport struct {
	cfg config.MailConfig
}

func newSMTPTransport(cfg config.MailConfig) *smtpTransport {
	return &smtpTransport{cfg: cfg}
}

func (t *smtpTransport) Name() string { return "smtp" }

func (t *smtpTransport) Send(ctx context.Context, msg *Message) error {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("smtp from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("smtp to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("smtp reply-to address: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	client, err := t.newClient()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	// Connectivity probe before the real send. A probe failure is logged and
	// the send is still attempted: transient greeting problems should not
	// preempt a delivery that may succeed.
	t.verify(ctx, client)

	sendCtx, cancel := context.WithTimeout(ctx, t.cfg.ConnectionTimeout+t.cfg.SocketTimeout)
	defer cancel()

	if err := client.DialAndSendWithContext(sendCtx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (t *smtpTransport) verify(ctx context.Context, client *gomail.Client) {
	verifyCtx, cancel := context.WithTimeout(ctx, t.cfg.ConnectionTimeout+t.cfg.GreetingTimeout)
	defer cancel()

	if err := client.DialWithContext(verifyCtx); err != nil {
		log.Printf("mailer: smtp verify failed host=%s port=%d err=%v, attempting send anyway", t.cfg.SMTPHost, t.cfg.SMTPPort, err)
		return
	}
	if err := client.Close(); err != nil {
		log.Printf("mailer: smtp verify close failed: %v", err)
	}
}

func (t *smtpTransport) newClient() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(t.cfg.SMTPPort),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.cfg.SMTPUser),
		gomail.WithPassword(t.cfg.SMTPPassword),
		gomail.WithTimeout(t.cfg.SocketTimeout),
	}
	if t.cfg.SMTPSecure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}
	if t.cfg.TLSSkipVerify {
		opts = append(opts, gomail.WithTLSConfig(&tls.Config{
			InsecureSkipVerify: true,
			ServerName:         t.cfg.SMTPHost,
			MinVersion:         tls.VersionTLS12,
		}))
	}
	return gomail.NewClient(t.cfg.SMTPHost, opts...)
}
