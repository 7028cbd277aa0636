package services

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"onboarding-backend/pkg/classify"
	"onboarding-backend/pkg/clients/brevo"
	"onboarding-backend/pkg/clients/sheets"
	"onboarding-backend/pkg/config"
	"onboarding-backend/pkg/email"
	"onboarding-backend/pkg/models"
)

// SubmissionService defines the interface for handling onboarding
// submissions.
type SubmissionService interface {
	ProcessSubmission(sub models.Submission)
}

type submissionServiceImpl struct {
	sheetsClient sheets.Client
	brevoClient  brevo.Client
	config       *config.Config
	logger       *zap.Logger
	now          func() time.Time
	newID        func() string
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	sheetsClient sheets.Client,
	brevoClient brevo.Client,
	cfg *config.Config,
	logger *zap.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		sheetsClient: sheetsClient,
		brevoClient:  brevoClient,
		config:       cfg,
		logger:       logger,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

// ProcessSubmission runs the full pipeline for one submission: both
// sheet appends, then the client welcome email, then the operator
// notification. Each side effect catches and logs its own failure so a
// downstream outage never blocks the others or the caller.
func (s *submissionServiceImpl) ProcessSubmission(sub models.Submission) {
	// The classification is derived here, never trusted from the
	// payload.
	sub.AccountClassification = classify.Account(sub.ConnectionCount, sub.AccountAge).Display
	if sub.SubmittedAt == "" {
		sub.SubmittedAt = s.now().UTC().Format(time.RFC3339)
	}

	s.logger.Info("processing submission",
		zap.String("name", sub.FullName),
		zap.String("email", sub.Email),
		zap.String("classification", sub.AccountClassification),
	)

	if err := s.appendToSheets(sub); err != nil {
		s.logger.Error("sheets append failed", zap.Error(err), zap.String("name", sub.FullName))
	} else {
		s.logger.Info("sheets append complete", zap.String("name", sub.FullName))
	}

	if err := s.sendClientEmail(sub); err != nil {
		s.logger.Error("client email failed", zap.Error(err), zap.String("to", sub.Email))
	} else {
		s.logger.Info("client email sent", zap.String("to", sub.Email))
	}

	if err := s.sendOperatorEmail(sub); err != nil {
		s.logger.Error("operator email failed", zap.Error(err), zap.String("to", s.config.OperatorEmail))
	} else {
		s.logger.Info("operator email sent", zap.String("to", s.config.OperatorEmail))
	}
}

func (s *submissionServiceImpl) appendToSheets(sub models.Submission) error {
	now := s.now()
	if err := s.sheetsClient.AppendRow(s.config.SubmissionsTab, models.SubmissionRow(sub, s.newID(), now)); err != nil {
		return err
	}
	return s.sheetsClient.AppendRow(s.config.DirectoryTab, models.DirectoryRow(sub, now))
}

func (s *submissionServiceImpl) sendClientEmail(sub models.Submission) error {
	html, err := email.ClientWelcome(sub, s.config.MeetingLink)
	if err != nil {
		return err
	}
	subject := "Welcome to BBM Group Affinity Advantage Program!"
	return s.brevoClient.SendEmail(sub.Email, sub.FullName, subject, html)
}

func (s *submissionServiceImpl) sendOperatorEmail(sub models.Submission) error {
	html, err := email.OperatorNotification(sub, s.now())
	if err != nil {
		return err
	}
	subject := "New Onboarding: " + sub.FullName + " - " + sub.CompanyName
	return s.brevoClient.SendEmail(s.config.OperatorEmail, s.config.OperatorName, subject, html)
}
