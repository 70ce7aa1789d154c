package service

import (
	"context"
	"fmt"

	"github.com/example/choreboard/internal/graphql"
	"github.com/example/choreboard/internal/models"
)

// PayoutService covers the unpaid-totals aggregate and the batch payout.
type PayoutService struct {
	gql *graphql.Client
}

// UnpaidTotals fetches each user's summed approved-but-unpaid cents. The
// aggregate is recomputed server-side on every read.
func (s *PayoutService) UnpaidTotals(ctx context.Context) ([]models.UnpaidTotal, error) {
	var totals []models.UnpaidTotal
	err := s.gql.Do(ctx, graphql.GetUnpaidTotals, nil, "getUnpaidTotals", &totals)
	return totals, err
}

// MarkPaid marks every approved completion of the given users as paid out.
// Irreversible batch action; callers confirm first.
func (s *PayoutService) MarkPaid(ctx context.Context, userIDs []int) error {
	if len(userIDs) == 0 {
		return fmt.Errorf("at least one user id is required")
	}
	return s.gql.Do(ctx, graphql.MarkCompletionsAsPaid, map[string]any{"userIds": userIDs}, "", nil)
}
