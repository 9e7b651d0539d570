package postgres

import (
	"context"
	"time"

	"pklradar/internal/domain/entity"
	domainerrors "pklradar/internal/domain/errors"
	"pklradar/internal/domain/repository"
	"pklradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// statColumns whitelists the counter columns reachable through IncrementDailyStat.
// The field value ends up in SQL, so it must never come from user input directly.
//
//nolint:gochecknoglobals
var statColumns = map[entity.StatField]string{
	entity.StatLiveViews:   "live_views",
	entity.StatSearchHits:  "search_hits",
	entity.StatAutoUpdates: "auto_updates",
}

// statsRepository implements the repository.StatsRepository interface.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// IncrementDailyStat atomically bumps one counter of the vendor's stats row for
// the given day, creating the row when it does not exist yet.
func (repo *statsRepository) IncrementDailyStat(ctx context.Context, vendorID uuid.UUID, day time.Time, field entity.StatField) error {
	column, ok := statColumns[field]
	if !ok {
		return errors.Errorf("unknown stat field: %s", field)
	}

	statsM := &model.VendorDailyStatsModel{
		VendorID: vendorID,
		Date:     day.Truncate(24 * time.Hour),
	}

	switch field {
	case entity.StatLiveViews:
		statsM.LiveViews = 1
	case entity.StatSearchHits:
		statsM.SearchHits = 1
	case entity.StatAutoUpdates:
		statsM.AutoUpdates = 1
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "vendor_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]any{
				column: gorm.Expr(column + " + 1"),
			}),
		}).
		Create(statsM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment daily stat")
	}

	return nil
}

// FindDailyStats retrieves a vendor's daily stats rows, newest day first.
func (repo *statsRepository) FindDailyStats(ctx context.Context, vendorID uuid.UUID, limit int) ([]*entity.VendorDailyStats, error) {
	var statsModels []*model.VendorDailyStatsModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("date DESC").
		Limit(limit).
		Find(&statsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find daily stats")
	}

	stats := make([]*entity.VendorDailyStats, 0, len(statsModels))
	for _, statsM := range statsModels {
		stats = append(stats, toDailyStatsDomain(statsM))
	}

	return stats, nil
}

// --- Mapper Functions ---

// toDailyStatsDomain converts a GORM VendorDailyStatsModel to a domain VendorDailyStats entity.
func toDailyStatsDomain(data *model.VendorDailyStatsModel) *entity.VendorDailyStats {
	if data == nil {
		return nil
	}

	return &entity.VendorDailyStats{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Date:        data.Date,
		LiveViews:   data.LiveViews,
		SearchHits:  data.SearchHits,
		AutoUpdates: data.AutoUpdates,
	}
}
