package store

import (
	"context"
	"fmt"

	"insights-server/internal/scope"
)

const sqlGetResponseIntervals = `
SELECT avg_response_interval
FROM sales_metrics
WHERE ($1::uuid IS NULL OR tenant_id = $1)
    AND avg_response_interval IS NOT NULL
    AND metric_date >= $2
    AND metric_date <= $3
`

// GetResponseIntervals retrieves the raw HH:MM:SS interval strings
// recorded in the rollup table for the scope's window. NULL intervals
// are excluded here so they never enter the sample.
func (s *Store) GetResponseIntervals(ctx context.Context, sc scope.Scope) ([]string, error) {
	var results []string
	err := s.db.SelectContext(ctx, &results, sqlGetResponseIntervals, sc.TenantID(), sc.Start, sc.End)
	if err != nil {
		s.logger.Error(ctx, "failed to get response intervals", err)
		return nil, fmt.Errorf("failed to get response intervals: %w", err)
	}
	return results, nil
}
