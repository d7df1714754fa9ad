package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/burakuz/campushare/internal/app/models"
	appRepos "github.com/burakuz/campushare/internal/app/repositories"
	"github.com/burakuz/campushare/internal/pkg/apperrors"
	"github.com/burakuz/campushare/internal/pkg/auth"
)

// CreateDefaultData creates two demo organizations with sample listings so a
// fresh install has something to browse. Already existing usernames are left
// untouched, so the seed is safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	orgRepo := appRepos.NewOrganizationRepository(dbPool)
	serviceRepo := appRepos.NewServiceRepository(dbPool)
	equipmentRepo := appRepos.NewEquipmentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo organizations)...")
	var finalErr error

	techID, created, err := ensureOrganization(ctx, orgRepo, &appModels.Organization{
		Name:        "Tech Society",
		Username:    "techsociety",
		Description: "Student technology club lending hardware and running workshops",
		Email:       "tech@campus.edu",
	}, "TechDemo123!")
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo organization techsociety")
		finalErr = errors.Join(finalErr, err)
	}

	if created && techID > 0 {
		workshopCapacity := 25
		services := []*appModels.Service{
			{
				OrganizationID: techID,
				Title:          "Intro to Soldering Workshop",
				Description:    "Hands-on soldering basics for beginners",
				ServiceType:    "workshop",
				IsFree:         true,
				Availability:   "Wednesdays 18:00-20:00",
				Capacity:       &workshopCapacity,
				Status:         appModels.ServiceStatusActive,
			},
			{
				OrganizationID: techID,
				Title:          "Website Setup Consultation",
				Description:    "One-on-one help setting up a club website",
				ServiceType:    "consultation",
				IsFree:         true,
				Availability:   "By appointment",
				Status:         appModels.ServiceStatusActive,
			},
		}
		for _, svc := range services {
			if err := serviceRepo.Create(ctx, svc); err != nil {
				lgr.Error().Err(err).Str("title", svc.Title).Msg("Error creating demo service")
				finalErr = errors.Join(finalErr, err)
			}
		}

		projectorDeposit := 50
		equipment := []*appModels.Equipment{
			{
				OrganizationID: techID,
				Name:           "Full HD Projector",
				Description:    "Portable projector with HDMI cable",
				Status:         appModels.EquipmentStatusAvailable,
				Deposit:        &projectorDeposit,
			},
			{
				OrganizationID: techID,
				Name:           "Soldering Station",
				Description:    "Temperature controlled soldering iron with stand",
				Status:         appModels.EquipmentStatusAvailable,
			},
		}
		for _, eq := range equipment {
			if err := equipmentRepo.Create(ctx, eq); err != nil {
				lgr.Error().Err(err).Str("name", eq.Name).Msg("Error creating demo equipment")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	designID, created, err := ensureOrganization(ctx, orgRepo, &appModels.Organization{
		Name:        "Design Club",
		Username:    "designclub",
		Description: "Graphic design collective offering poster work and camera gear",
		Email:       "design@campus.edu",
	}, "DesignDemo123!")
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo organization designclub")
		finalErr = errors.Join(finalErr, err)
	}

	if created && designID > 0 {
		posterPrice := 15
		if err := serviceRepo.Create(ctx, &appModels.Service{
			OrganizationID: designID,
			Title:          "Event Poster Design",
			Description:    "Custom poster design for campus events",
			ServiceType:    "design",
			IsFree:         false,
			Price:          &posterPrice,
			Availability:   "One week turnaround",
			Status:         appModels.ServiceStatusActive,
		}); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo design service")
			finalErr = errors.Join(finalErr, err)
		}

		cameraConditions := "Return with charged battery and empty memory card"
		if err := equipmentRepo.Create(ctx, &appModels.Equipment{
			OrganizationID: designID,
			Name:           "DSLR Camera Kit",
			Description:    "Camera body with 18-55mm lens and tripod",
			Status:         appModels.EquipmentStatusAvailable,
			Conditions:     &cameraConditions,
		}); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo camera kit")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

// ensureOrganization creates the organization unless its username is already
// taken. It reports whether a new record was created.
func ensureOrganization(ctx context.Context, orgRepo appRepos.OrganizationRepository, org *appModels.Organization, password string) (int64, bool, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, false, err
	}
	org.PasswordHash = hash

	err = orgRepo.Create(ctx, org)
	if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return org.ID, true, nil
}
