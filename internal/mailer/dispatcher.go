package mailer

import (
	"context"
	"log"
	"sync"

	"github.com/devcraft/portfolio-api/internal/config"
	"github.com/devcraft/portfolio-api/internal/entity"
)

// SendResult captures the outcome of a single dispatch attempt. Transport
// failures become data here instead of errors: the caller decides whether a
// failed notification matters (for contact submissions it does not, the row
// is already durable).
type SendResult struct {
	OK    bool   `json:"ok"`
	Via   string `json:"via,omitempty"`
	Error string `json:"error,omitempty"`
}

// Transport delivers a rendered message through one provider.
type Transport interface {
	Name() string
	Send(ctx context.Context, msg *Message) error
}

const maxErrorLength = 256

// Dispatcher tries an ordered list of transports and short-circuits on the
// first success. It never returns an error to its caller.
type Dispatcher struct {
	cfg        config.MailConfig
	transports []Transport

	// lastErr is a best-effort diagnostic slot for operational tooling.
	// The authoritative failure for any given dispatch is the SendResult
	// returned from that call, never this field.
	mu      sync.Mutex
	lastErr string
}

// NewDispatcher builds the transport chain from configuration: the API-key
// transport first when a key is present, then the connection-based transport
// when its credentials are complete. An empty chain is valid degraded mode.
func NewDispatcher(cfg config.MailConfig) *Dispatcher {
	var transports []Transport
	if cfg.HasSendGrid() {
		transports = append(transports, newSendGridTransport(cfg.SendGridAPIKey))
	}
	if cfg.HasSMTP() {
		transports = append(transports, newSMTPTransport(cfg))
	}
	return NewDispatcherWithTransports(cfg, transports...)
}

// NewDispatcherWithTransports wires an explicit transport chain.
func NewDispatcherWithTransports(cfg config.MailConfig, transports ...Transport) *Dispatcher {
	return &Dispatcher{cfg: cfg, transports: transports}
}

// Dispatch renders the submission and walks the transport chain. The first
// transport to accept the message wins; exhaustion yields the last failure,
// truncated to a bounded length.
func (d *Dispatcher) Dispatch(ctx context.Context, submission *entity.ContactSubmission) SendResult {
	d.logConfigSummary()

	if len(d.transports) == 0 {
		const msg = "no mail transport configured"
		log.Printf("mailer: %s, submission id=%s stored but not delivered", msg, submission.ID)
		d.setLastError(msg)
		return SendResult{OK: false, Error: msg}
	}

	msg := NewSubmissionMessage(d.cfg, submission)

	var lastErr string
	for _, transport := range d.transports {
		err := transport.Send(ctx, msg)
		if err == nil {
			log.Printf("mailer: delivered submission id=%s via=%s", submission.ID, transport.Name())
			d.setLastError("")
			return SendResult{OK: true, Via: transport.Name()}
		}
		lastErr = truncateError(err.Error())
		log.Printf("mailer: transport=%s failed: %s", transport.Name(), lastErr)
	}

	d.setLastError(lastErr)
	return SendResult{OK: false, Error: lastErr}
}

// LastError returns the most recent dispatch failure, if any. Diagnostic
// only: concurrent dispatches overwrite it in arrival order.
func (d *Dispatcher) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

func (d *Dispatcher) setLastError(msg string) {
	d.mu.Lock()
	d.lastErr = msg
	d.mu.Unlock()
}

// logConfigSummary records a non-sensitive view of the mail configuration.
// Credential values never appear here, only their presence.
func (d *Dispatcher) logConfigSummary() {
	log.Printf("mailer: config host=%s port=%d secure=%t sendgrid_key_present=%t smtp_credentials_present=%t recipient_set=%t",
		d.cfg.SMTPHost,
		d.cfg.SMTPPort,
		d.cfg.SMTPSecure,
		d.cfg.HasSendGrid(),
		d.cfg.HasSMTP(),
		d.cfg.Recipient != "",
	)
}

func truncateError(msg string) string {
	if len(msg) > maxErrorLength {
		return msg[:maxErrorLength]
	}
	return msg
}
