package survey

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/palemoky/name-chemi/internal/database"
)

// KeyPrefix prefixes the key a report is saved under; the date key follows.
const KeyPrefix = "survey:"

// SaveReport stores the report under its date, replacing any earlier run.
func SaveReport(ctx context.Context, repo database.RepositoryInterface, report *Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode survey report: %w", err)
	}
	if err := repo.Set(ctx, KeyPrefix+report.Date, datatypes.JSON(data)); err != nil {
		return fmt.Errorf("failed to save survey report: %w", err)
	}
	return nil
}

// LoadReport reads the report saved for dateKey. It returns database.ErrNotFound
// when no survey ran for that date.
func LoadReport(ctx context.Context, repo database.RepositoryInterface, dateKey string) (*Report, error) {
	data, err := repo.Get(ctx, KeyPrefix+dateKey)
	if err != nil {
		return nil, err
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode survey report: %w", err)
	}
	return &report, nil
}
