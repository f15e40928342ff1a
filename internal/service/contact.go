package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/devcraft/portfolio-api/internal/dto"
	"github.com/devcraft/portfolio-api/internal/entity"
	"github.com/devcraft/portfolio-api/internal/mailer"
	"github.com/devcraft/portfolio-api/internal/repository"
)

// ValidationError reports per-field problems with a contact submission.
type ValidationError struct {
	Details map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid contact submission: %s", strings.Join(fields, ", "))
}

// Notifier delivers a submission notification and reports the outcome as data.
type Notifier interface {
	Dispatch(ctx context.Context, submission *entity.ContactSubmission) mailer.SendResult
}

// ContactService owns the contact submission pipeline:
// validate, persist, then notify. Notification failures are absorbed because
// the submission is already durable by the time delivery is attempted.
type ContactService struct {
	repo     repository.SubmissionsRepository
	notifier Notifier
}

// NewContactService creates a new instance of ContactService.
func NewContactService(repo repository.SubmissionsRepository, notifier Notifier) *ContactService {
	return &ContactService{repo: repo, notifier: notifier}
}

// Submit validates and persists a contact request, then attempts delivery of
// the notification email. A validation failure returns a *ValidationError and
// nothing is stored. The SendResult is informational: delivery failure never
// fails the submission.
func (s *ContactService) Submit(ctx context.Context, req dto.ContactRequest) (*entity.ContactSubmission, mailer.SendResult, error) {
	if err := validateContactRequest(req); err != nil {
		return nil, mailer.SendResult{}, err
	}

	submission := &entity.ContactSubmission{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       optionalField(req.Phone),
		ProjectType: strings.TrimSpace(req.ProjectType),
		Budget:      optionalField(req.Budget),
		Message:     strings.TrimSpace(req.Message),
	}

	stored, err := s.repo.Create(ctx, submission)
	if err != nil {
		return nil, mailer.SendResult{}, fmt.Errorf("persist submission: %w", err)
	}

	result := s.notifier.Dispatch(ctx, stored)
	return stored, result, nil
}

// ListSubmissions returns every stored submission in insertion order.
func (s *ContactService) ListSubmissions(ctx context.Context) ([]entity.ContactSubmission, error) {
	return s.repo.List(ctx)
}

func validateContactRequest(req dto.ContactRequest) error {
	details := make(map[string]string)

	required := map[string]string{
		"name":        req.Name,
		"email":       req.Email,
		"projectType": req.ProjectType,
		"message":     req.Message,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			details[field] = "must not be empty"
		}
	}

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}

func optionalField(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
