package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/blaisecz/comfort-census/internal/domain"
	"github.com/blaisecz/comfort-census/internal/repository"
	"github.com/rs/zerolog/log"
)

// SessionPrefix marks sessions created by the seeder.
const SessionPrefix = "seed_"

// demoCheckIns cycles through every mood and comfort so today's counters are
// non-zero in each bucket. Timestamps never fall before today's UTC midnight.
func demoCheckIns(now time.Time) []domain.CheckIn {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var out []domain.CheckIn
	i := 0
	for _, mood := range domain.Moods {
		for _, comfort := range domain.Comforts {
			out = append(out, domain.CheckIn{
				SessionID:   seedSession(now, i%5),
				MoodState:   mood,
				ComfortType: comfort,
				CreatedAt:   latest(now.Add(-time.Duration(i)*time.Minute), midnight),
			})
			i++
		}
	}
	return out
}

func latest(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}

func seedSession(now time.Time, n int) string {
	return fmt.Sprintf("%s%s_%02d", SessionPrefix, domain.DateOf(now), n)
}

// Run records the demo check-ins for today unless today already has seed data.
func Run(ctx context.Context, repo repository.CheckInRepository) error {
	now := time.Now().UTC()

	seeded, err := repo.CountBySession(ctx, seedSession(now, 0))
	if err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if seeded > 0 {
		log.Info().Msg("seed data already present, skipping")
		return nil
	}

	checkIns := demoCheckIns(now)
	for i := range checkIns {
		if err := repo.Create(ctx, &checkIns[i]); err != nil {
			return fmt.Errorf("failed to seed check-in %d: %w", i, err)
		}
	}

	log.Info().Int("check_ins", len(checkIns)).Msg("seed completed")
	return nil
}
