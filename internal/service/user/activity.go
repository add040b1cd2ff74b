package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/inspection-registry/internal/domain"
	"github.com/heartmarshall/inspection-registry/pkg/ctxutil"
)

// Activity lists the mutations performed by the authenticated user, newest first.
func (s *Service) Activity(ctx context.Context, input ActivityInput) ([]domain.AuditRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.audit.GetByUser(ctx, userID, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("user.Activity: %w", err)
	}
	return records, nil
}

// History lists the recorded mutations of a single registry entity.
// Deleted entities keep their history, so no existence check is made.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.AuditRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	records, err := s.audit.GetByEntity(ctx, input.EntityType, input.EntityID, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("user.History: %w", err)
	}
	return records, nil
}
