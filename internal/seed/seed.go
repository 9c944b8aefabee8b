package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/karthik/facultydesk/internal/app/models"
	appRepos "github.com/karthik/facultydesk/internal/app/repositories"
	"github.com/karthik/facultydesk/internal/pkg/apperrors"
)

// defaultActivityTypes are the canonical types every fresh installation gets
var defaultActivityTypes = []appModels.ActivityType{
	{Name: "Workshop", Category: "Professional Development"},
	{Name: "Seminar", Category: "Professional Development"},
	{Name: "Research", Category: "Academic"},
	{Name: "Other", Category: "General"},
}

// CreateDefaultData inserts the canonical activity types and the current
// academic year if they don't exist. Reruns are no-ops.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	typeRepo := appRepos.NewActivityTypeRepository(dbPool)
	yearRepo := appRepos.NewAcademicYearRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (activity types, academic year)...")
	var finalErr error

	for _, t := range defaultActivityTypes {
		activityType := t
		err := typeRepo.Create(ctx, &activityType)
		if err != nil && !errors.Is(err, apperrors.ErrActivityTypeExists) {
			lgr.Error().Err(err).Str("name", t.Name).Msg("Error creating default activity type")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Academic year rolls over in August
	now := time.Now()
	start := now.Year()
	if now.Month() < time.August {
		start--
	}

	exists, err := yearRepo.ExistsByRange(ctx, start, start+1)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking current academic year")
		return errors.Join(finalErr, err)
	}
	if !exists {
		year := &appModels.AcademicYear{YearStart: start, YearEnd: start + 1}
		if err := yearRepo.Create(ctx, year); err != nil {
			lgr.Error().Err(err).Msg("Error creating current academic year")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Int("yearStart", start).Int("yearEnd", start+1).Msg("Created current academic year")
		}
	}

	return finalErr
}
