package mailer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/devcraft/portfolio-api/internal/config"
	"github.com/devcraft/portfolio-api/internal/entity"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultPhoneRegion = "IN"

// Message is a fully rendered outbound notification, independent of the
// transport that will carry it.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// NewSubmissionMessage renders the notification email for a contact submission.
// Reply-To is only set when the submitter address passes a syntax and domain
// check, so a garbage address cannot break delivery of the notification itself.
func NewSubmissionMessage(cfg config.MailConfig, submission *entity.ContactSubmission) *Message {
	msg := &Message{
		From:    cfg.Sender,
		To:      cfg.Recipient,
		Subject: fmt.Sprintf("New Inquiry: %s - %s", submission.ProjectType, submission.Name),
		Body:    renderBody(submission),
	}
	if addr := strings.ToLower(strings.TrimSpace(submission.Email)); isDeliverableAddress(addr) {
		msg.ReplyTo = addr
	}
	return msg
}

func renderBody(s *entity.ContactSubmission) string {
	var b strings.Builder
	divider := "-----------------------------------------\n"

	b.WriteString("New Project Inquiry from Your Portfolio Website\n\n")
	b.WriteString(divider)
	b.WriteString("CLIENT DETAILS\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Phone: %s\n\n", displayPhone(s.Phone))
	b.WriteString(divider)
	b.WriteString("PROJECT DETAILS\n")
	b.WriteString(divider)
	fmt.Fprintf(&b, "Project Type: %s\n", s.ProjectType)
	fmt.Fprintf(&b, "Budget Range: %s\n\n", displayBudget(s.Budget))
	b.WriteString(divider)
	b.WriteString("MESSAGE\n")
	b.WriteString(divider)
	b.WriteString(s.Message)
	b.WriteString("\n\n")
	b.WriteString(divider)
	b.WriteString("This message was sent from your portfolio contact form.\n")
	b.WriteString("Reply directly to this email to respond to the client.")

	return b.String()
}

// displayPhone renders the phone number in E.164 when it parses as a valid
// number, otherwise shows whatever the client typed.
func displayPhone(phone *string) string {
	if phone == nil || strings.TrimSpace(*phone) == "" {
		return "Not provided"
	}
	raw := strings.TrimSpace(*phone)
	number, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return raw
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func displayBudget(budget *string) string {
	if budget == nil || strings.TrimSpace(*budget) == "" {
		return "Not specified"
	}
	return strings.TrimSpace(*budget)
}

func isDeliverableAddress(addr string) bool {
	if !emailPattern.MatchString(addr) {
		return false
	}
	domain := addr[strings.LastIndex(addr, "@")+1:]
	ascii, err := idnaProfile.ToASCII(domain)
	return err == nil && ascii != ""
}
