package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/devcraft/portfolio-api/internal/config"
	"github.com/devcraft/portfolio-api/internal/entity"
)

type stubTransport struct {
	name  string
	err   error
	calls int
}

func (s *stubTransport) Name() string { return s.name }

func (s *stubTransport) Send(ctx context.Context, msg *Message) error {
	s.calls++
	return s.err
}

func testSubmission() *entity.ContactSubmission {
	return &entity.ContactSubmission{
		ID:          uuid.New(),
		Name:        "Asha Verma",
		Email:       "asha@example.com",
		ProjectType: "webapp",
		Message:     "Need a booking platform.",
	}
}

func testMailConfig() config.MailConfig {
	return config.MailConfig{
		Sender:    "owner@example.com",
		Recipient: "owner@example.com",
	}
}

func TestDispatcher_PrimarySuccessShortCircuits(t *testing.T) {
	primary := &stubTransport{name: "sendgrid"}
	fallback := &stubTransport{name: "smtp"}
	d := NewDispatcherWithTransports(testMailConfig(), primary, fallback)

	result := d.Dispatch(context.Background(), testSubmission())
	if !result.OK || result.Via != "sendgrid" {
		t.Fatalf("expected success via sendgrid, got %+v", result)
	}
	if fallback.calls != 0 {
		t.Fatalf("fallback must not be attempted after primary success")
	}
	if d.LastError() != "" {
		t.Fatalf("expected diagnostic slot cleared on success, got %q", d.LastError())
	}
}

func TestDispatcher_FallsBackWhenPrimaryFails(t *testing.T) {
	primary := &stubTransport{name: "sendgrid", err: errors.New("401 unauthorized")}
	fallback := &stubTransport{name: "smtp"}
	d := NewDispatcherWithTransports(testMailConfig(), primary, fallback)

	result := d.Dispatch(context.Background(), testSubmission())
	if !result.OK || result.Via != "smtp" {
		t.Fatalf("expected fallback delivery via smtp, got %+v", result)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("expected both transports attempted once, got %d/%d", primary.calls, fallback.calls)
	}
}

func TestDispatcher_ExhaustionReportsLastError(t *testing.T) {
	primary := &stubTransport{name: "sendgrid", err: errors.New("401 unauthorized")}
	fallback := &stubTransport{name: "smtp", err: errors.New("dial tcp: connection refused")}
	d := NewDispatcherWithTransports(testMailConfig(), primary, fallback)

	result := d.Dispatch(context.Background(), testSubmission())
	if result.OK {
		t.Fatalf("expected failure when all transports fail")
	}
	if !strings.Contains(result.Error, "connection refused") {
		t.Fatalf("expected the last failure to be reported, got %q", result.Error)
	}
	if d.LastError() != result.Error {
		t.Fatalf("expected diagnostic slot to mirror the last result")
	}
}

func TestDispatcher_NoTransportsConfigured(t *testing.T) {
	d := NewDispatcherWithTransports(testMailConfig())

	result := d.Dispatch(context.Background(), testSubmission())
	if result.OK {
		t.Fatalf("expected degraded-mode failure result")
	}
	if result.Error == "" {
		t.Fatalf("expected an explanatory error message")
	}
}

func TestDispatcher_TruncatesLongErrors(t *testing.T) {
	longErr := errors.New(strings.Repeat("x", maxErrorLength*2))
	transport := &stubTransport{name: "smtp", err: longErr}
	d := NewDispatcherWithTransports(testMailConfig(), transport)

	result := d.Dispatch(context.Background(), testSubmission())
	if len(result.Error) != maxErrorLength {
		t.Fatalf("expected error truncated to %d chars, got %d", maxErrorLength, len(result.Error))
	}
}

func TestNewDispatcher_TransportSelection(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.MailConfig
		want []string
	}{
		{
			name: "nothing configured",
			cfg:  config.MailConfig{},
			want: nil,
		},
		{
			name: "api key only",
			cfg:  config.MailConfig{SendGridAPIKey: "SG.key"},
			want: []string{"sendgrid"},
		},
		{
			name: "smtp only",
			cfg: config.MailConfig{
				SMTPHost: "smtp.gmail.com", SMTPUser: "owner@example.com", SMTPPassword: "secret",
			},
			want: []string{"smtp"},
		},
		{
			name: "api key takes priority over smtp",
			cfg: config.MailConfig{
				SendGridAPIKey: "SG.key",
				SMTPHost:       "smtp.gmail.com", SMTPUser: "owner@example.com", SMTPPassword: "secret",
			},
			want: []string{"sendgrid", "smtp"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDispatcher(tc.cfg)
			var got []string
			for _, transport := range d.transports {
				got = append(got, transport.Name())
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected transports %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected transports %v, got %v", tc.want, got)
				}
			}
		})
	}
}
