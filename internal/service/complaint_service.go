package service

import (
	"context"
	"sync"

	"branch-ledger/internal/core/domain"
	"branch-ledger/internal/core/ports"
	"branch-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// complaintService implements ports.ComplaintService. Resolve rewrites the
// whole store from a load, so every operation runs in one critical section
// to keep concurrent filings and resolutions from losing each other.
type complaintService struct {
	mu         sync.Mutex
	complaints ports.ComplaintRepository
	log        zerolog.Logger
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(complaints ports.ComplaintRepository, log zerolog.Logger) ports.ComplaintService {
	return &complaintService{complaints: complaints, log: log}
}

// File records a new open complaint. The account id sits mid-row in the
// store, so it must not carry the separator; the text is the trailing field
// and only needs to stay on one line.
func (s *complaintService) File(ctx context.Context, accountID, text string) (*domain.Complaint, error) {
	if err := validateRowField("account number", accountID); err != nil {
		return nil, err
	}
	if err := validateFreeText("complaint", text); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Complaint{
		ID:        uuid.New(),
		AccountID: accountID,
		Status:    domain.ComplaintStatusOpen,
		Text:      text,
	}
	if err := s.complaints.Append(ctx, c); err != nil {
		return nil, err
	}

	s.log.Info().Str("complaint_id", c.ID.String()).Str("account_id", accountID).Msg("complaint filed")
	return &c, nil
}

// ListOpen returns unresolved complaints in filing order.
func (s *complaintService) ListOpen(ctx context.Context) ([]domain.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	complaints, err := s.complaints.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	var open []domain.Complaint
	for _, c := range complaints {
		if c.IsOpen() {
			open = append(open, c)
		}
	}
	return open, nil
}

// Resolve marks one complaint as handled.
func (s *complaintService) Resolve(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	complaints, err := s.complaints.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range complaints {
		if complaints[i].ID != id {
			continue
		}
		complaints[i].Status = domain.ComplaintStatusResolved
		if err := s.complaints.SaveAll(ctx, complaints); err != nil {
			return err
		}
		s.log.Info().Str("complaint_id", id.String()).Msg("complaint resolved")
		return nil
	}
	return apperror.ErrComplaintNotFound(id.String())
}
