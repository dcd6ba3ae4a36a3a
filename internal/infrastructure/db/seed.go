// Package db holds the store wiring shared by both drivers: the port
// bundle handed to the services and the reference fixtures loaded into
// an empty deployment.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

// Stores bundles one repository per collection.
type Stores struct {
	Users         ports.UserRepository
	Contributions ports.ContributionRepository
	Mentors       ports.MentorRepository
	Localities    ports.LocalityRepository
}

// Seed loads the reference roster and fixtures into an empty store.
// The admin account is seeded with a bcrypt hash of adminPassword.
// Seeding is skipped entirely when the admin user already exists.
func Seed(ctx context.Context, s Stores, adminUsername, adminPassword string, log zerolog.Logger) error {
	_, err := s.Users.FindByUsername(ctx, adminUsername)
	if err == nil {
		log.Debug().Msg("store already seeded")
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed probe: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin hash: %w", err)
	}

	users := []domain.User{
		{Username: "core1", Role: domain.RoleCore},
		{Username: "core2", Role: domain.RoleCore},
		{Username: "manager_chandrapur", Role: domain.RoleManager, AssignedVillage: domain.VillageChandrapur},
		{Username: "manager_mohisguha", Role: domain.RoleManager, AssignedVillage: domain.VillageMohisguha},
		{Username: "manager_chatra", Role: domain.RoleManager, AssignedVillage: domain.VillageChatra},
		{Username: adminUsername, Role: domain.RoleAdmin, PasswordHash: string(hash)},
	}
	for i := range users {
		if err := s.Users.Create(ctx, &users[i]); err != nil {
			return fmt.Errorf("seed user %s: %w", users[i].Username, err)
		}
	}

	localities := []domain.Locality{
		{Name: "North", Village: domain.VillageChandrapur},
		{Name: "South", Village: domain.VillageChandrapur},
		{Name: "Main Market", Village: domain.VillageMohisguha},
		{Name: "Riverside", Village: domain.VillageChatra},
	}
	for i := range localities {
		if err := s.Localities.Create(ctx, &localities[i]); err != nil {
			return fmt.Errorf("seed locality %s: %w", localities[i].Name, err)
		}
	}

	mentors := []domain.Mentor{
		{Name: "Rajesh Kumar", Contact: "9876543210", Village: domain.VillageChandrapur, Locality: "North"},
		{Name: "Sunita Devi", Contact: "9876543211", Village: domain.VillageMohisguha, Locality: "Main Market"},
	}
	for i := range mentors {
		if err := s.Mentors.Create(ctx, &mentors[i]); err != nil {
			return fmt.Errorf("seed mentor %s: %w", mentors[i].Name, err)
		}
	}

	contributions := []domain.Contribution{
		{DonorName: "Amit Singh", Village: domain.VillageChandrapur, Locality: "North", Amount: 500, PaymentType: domain.PaymentCash, Date: "2026-06-03"},
		{DonorName: "Priya Sharma", Village: domain.VillageChandrapur, Locality: "South", Amount: 1000, PaymentType: domain.PaymentOnline, Date: "2026-06-17"},
		{DonorName: "Rohan Mehta", Village: domain.VillageMohisguha, Locality: "Main Market", Amount: 750, PaymentType: domain.PaymentCash, Date: "2026-07-02"},
		{DonorName: "Anjali Gupta", Village: domain.VillageChatra, Locality: "Riverside", Amount: 1200, PaymentType: domain.PaymentOnline, Date: "2026-07-15"},
		{DonorName: "Vikram Rathore", Village: domain.VillageChandrapur, Locality: "North", Amount: 250, PaymentType: domain.PaymentOther, Date: "2026-07-28"},
		{DonorName: "Neha Verma", Village: domain.VillageMohisguha, Locality: "Main Market", Amount: 2000, PaymentType: domain.PaymentOnline, Date: "2026-08-05"},
		{DonorName: "Sanjay Patel", Village: domain.VillageChatra, Locality: "Riverside", Amount: 300, PaymentType: domain.PaymentCash, Date: "2026-08-14"},
		{DonorName: "Kavita Joshi", Village: domain.VillageChandrapur, Locality: "South", Amount: 1500, PaymentType: domain.PaymentOnline, Date: "2026-08-21"},
	}
	for i := range contributions {
		if err := s.Contributions.Create(ctx, &contributions[i]); err != nil {
			return fmt.Errorf("seed contribution %s: %w", contributions[i].DonorName, err)
		}
	}

	log.Info().
		Int("users", len(users)).
		Int("localities", len(localities)).
		Int("mentors", len(mentors)).
		Int("contributions", len(contributions)).
		Msg("store seeded with reference fixtures")

	return nil
}
