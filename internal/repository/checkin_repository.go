package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckInRepository interface {
	// Create inserts the check-in and counts it in that day's metrics atomically.
	Create(ctx context.Context, checkIn *domain.CheckIn) error
	GetDailyMetrics(ctx context.Context, date string) (*domain.DailyMetrics, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)
	ListBySession(ctx context.Context, sessionID string, filter domain.CheckInFilter) ([]domain.CheckIn, error)
}

type checkInRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db, now: time.Now}
}

func (r *checkInRepository) Create(ctx context.Context, checkIn *domain.CheckIn) error {
	if checkIn.ID == uuid.Nil {
		checkIn.ID = uuid.New()
	}
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = r.now().UTC()
	}
	date := domain.DateOf(checkIn.CreatedAt)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(checkIn).Error; err != nil {
			return err
		}

		// Make sure the day's row exists, then take its row lock before counting.
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoNothing: true,
		}).Create(domain.NewDailyMetrics(date)).Error; err != nil {
			return err
		}

		var metrics domain.DailyMetrics
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("date = ?", date).
			First(&metrics).Error; err != nil {
			return err
		}

		metrics.Add(checkIn.MoodState, checkIn.ComfortType)
		return tx.Save(&metrics).Error
	})
}

func (r *checkInRepository) GetDailyMetrics(ctx context.Context, date string) (*domain.DailyMetrics, error) {
	var metrics domain.DailyMetrics
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&metrics).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &metrics, nil
}

func (r *checkInRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.CheckIn{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error
	return count, err
}

func (r *checkInRepository) ListBySession(ctx context.Context, sessionID string, filter domain.CheckInFilter) ([]domain.CheckIn, error) {
	query := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC")

	cursor, err := pagination.DecodeCursor(filter.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var checkIns []domain.CheckIn
	if err := query.Find(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}
