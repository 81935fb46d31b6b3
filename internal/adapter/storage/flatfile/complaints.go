package flatfile

import (
	"context"
	"fmt"

	"branch-ledger/internal/core/domain"
	"branch-ledger/pkg/apperror"

	"github.com/google/uuid"
)

const complaintFields = 4 // id,account_id,status,text — text last, may embed commas

// ComplaintStore persists customer complaints. Filing appends; resolving
// rewrites the store.
type ComplaintStore struct {
	store *Store
}

// NewComplaintStore creates a complaint store over the given file.
func NewComplaintStore(path string) *ComplaintStore {
	return &ComplaintStore{store: NewStore(path, complaintFields)}
}

// Append files one complaint.
func (s *ComplaintStore) Append(_ context.Context, c domain.Complaint) error {
	return s.store.Append(encodeComplaint(c))
}

// LoadAll returns every complaint in filing order.
func (s *ComplaintStore) LoadAll(_ context.Context) ([]domain.Complaint, error) {
	rows, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	complaints := make([]domain.Complaint, 0, len(rows))
	for i, row := range rows {
		c, err := decodeComplaint(row, s.store.Path(), i+1)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, nil
}

// SaveAll rewrites the store after resolutions.
func (s *ComplaintStore) SaveAll(_ context.Context, complaints []domain.Complaint) error {
	rows := make([][]string, 0, len(complaints))
	for _, c := range complaints {
		rows = append(rows, encodeComplaint(c))
	}
	return s.store.Save(rows)
}

func encodeComplaint(c domain.Complaint) []string {
	return []string{c.ID.String(), c.AccountID, string(c.Status), c.Text}
}

func decodeComplaint(row []string, path string, n int) (domain.Complaint, error) {
	id, err := uuid.Parse(row[0])
	if err != nil {
		return domain.Complaint{}, apperror.ErrMalformedRecord(path, n, fmt.Errorf("id %q: %w", row[0], err))
	}
	status := domain.ComplaintStatus(row[2])
	if status != domain.ComplaintStatusOpen && status != domain.ComplaintStatusResolved {
		return domain.Complaint{}, apperror.ErrMalformedRecord(path, n, fmt.Errorf("unknown status %q", row[2]))
	}
	return domain.Complaint{ID: id, AccountID: row[1], Status: status, Text: row[3]}, nil
}
