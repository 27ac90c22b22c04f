// Package seed provisions the staff accounts and the activity catalog on
// an empty database.
package seed

import (
	"context"
	"fmt"
	"time"

	"marrakech-tours/internal/data/entity"
	"marrakech-tours/internal/data/repository"
	"marrakech-tours/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EnsureDefaults seeds staff users and the catalog when their tables are
// empty. Safe to run on every startup.
func EnsureDefaults(ctx context.Context, repo *repository.Repository, config *utils.Config, log *zap.Logger) error {
	if err := seedUsers(ctx, repo, config, log); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedActivities(ctx, repo, log); err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}
	return nil
}

func seedUsers(ctx context.Context, repo *repository.Repository, config *utils.Config, log *zap.Logger) error {
	count, err := repo.User.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	staff := []struct {
		username string
		password string
		role     entity.UserRole
	}{
		{"nadia", config.Seed.SuperadminPassword, entity.RoleSuperadmin},
		{"ahmed", config.Seed.AdminPassword, entity.RoleAdmin},
		{"yahia", config.Seed.AdminPassword, entity.RoleAdmin},
	}

	for _, member := range staff {
		hash, err := utils.HashPassword(member.password)
		if err != nil {
			return err
		}

		now := time.Now()
		user := &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Username:     member.username,
			PasswordHash: hash,
			Role:         member.role,
		}

		if err := repo.User.Create(ctx, user); err != nil {
			return err
		}

		log.Info("Seeded staff user",
			zap.String("username", member.username),
			zap.String("role", string(member.role)),
		)
	}

	return nil
}

func seedActivities(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	count, err := repo.Activity.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, activity := range defaultActivities() {
		if err := repo.Activity.Create(ctx, activity); err != nil {
			return err
		}
	}

	log.Info("Seeded activity catalog", zap.Int("count", len(defaultActivities())))
	return nil
}

func defaultActivities() []*entity.Activity {
	now := time.Now()

	newActivity := func(name, description, price, image string, photos []string, category string, gygPrice int, availability string, duration string) *entity.Activity {
		a := &entity.Activity{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:              name,
			Description:       description,
			Price:             price,
			Currency:          "MAD",
			Image:             image,
			Photos:            photos,
			Category:          category,
			IsActive:          true,
			GetYourGuidePrice: &gygPrice,
			Availability:      &availability,
		}
		if duration != "" {
			a.Duration = &duration
		}
		return a
	}

	return []*entity.Activity{
		newActivity(
			"Hot Air Balloon Ride Marrakech",
			"Experience breathtaking sunrise views over Marrakech and the Atlas Mountains from a hot air balloon. Includes hotel pickup, traditional Berber breakfast, and flight certificate.",
			"1100",
			"/attached_assets/hot-air-balloon-1.jpg",
			[]string{
				"/attached_assets/hot-air-balloon-1.jpg",
				"/attached_assets/hot-air-balloon-2.jpg",
				"/attached_assets/montgolfiere-marrakech.jpg",
			},
			"Adventure", 1400, "Daily at sunrise", "4 hours",
		),
		newActivity(
			"Agafay Desert Combo Experience",
			"Full-day desert adventure combining camel riding, quad biking, and traditional dinner under the stars in the Agafay Desert near Marrakech.",
			"450",
			"/attached_assets/agafay-1.jpg",
			[]string{
				"/attached_assets/agafay-1.jpg",
				"/attached_assets/agafay-2.jpg",
				"/attached_assets/agafay-3.jpg",
			},
			"Desert", 600, "Daily", "8 hours",
		),
		newActivity(
			"Essaouira Day Trip",
			"Discover the coastal charm of Essaouira, the \"Windy City\" with its Portuguese ramparts, blue fishing boats, and authentic seafood at Casa Vera restaurant.",
			"200",
			"/attached_assets/essaouira-1.jpg",
			[]string{
				"/attached_assets/essaouira-1.jpg",
				"/attached_assets/essaouira-2.jpg",
				"/attached_assets/essaouira-3.jpg",
			},
			"Cultural", 300, "Daily", "10 hours",
		),
		newActivity(
			"Ouzoud Waterfalls Day Trip",
			"Visit Morocco's highest waterfalls, swim in natural pools, enjoy lunch by the cascades, and spot Barbary apes in their natural habitat.",
			"200",
			"/attached_assets/ouzoud-1.jpg",
			[]string{
				"/attached_assets/ouzoud-1.jpg",
				"/attached_assets/ouzoud-2.jpg",
			},
			"Nature", 280, "Daily", "",
		),
		newActivity(
			"Ourika Valley Day Trip",
			"Explore traditional Berber villages, terraced fields, and stunning Atlas Mountain landscapes in the beautiful Ourika Valley.",
			"150",
			"/attached_assets/ourika-1.jpg",
			[]string{
				"/attached_assets/ourika-1.jpg",
				"/attached_assets/ourika-2.jpg",
				"/attached_assets/ourika-3.jpg",
			},
			"Cultural", 220, "Daily", "6 hours",
		),
	}
}
