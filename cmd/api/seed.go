package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/models"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/services"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/store"
	"github.com/vaibhav04v-pixel/cloud-care-connect/internal/utils"
)

type seedDoctor struct {
	first, last, email, specialization, department string
	experience                                      int
}

var seedDepartments = []models.Department{
	{Name: "Cardiology", Description: "Heart and vascular care", Floor: intPtr(2), Phone: "555-0120"},
	{Name: "Neurology", Description: "Brain and nervous system", Floor: intPtr(3), Phone: "555-0130"},
	{Name: "Orthopedics", Description: "Bones, joints and muscles", Floor: intPtr(1), Phone: "555-0110"},
	{Name: "Pediatrics", Description: "Care for children", Floor: intPtr(4), Phone: "555-0140"},
	{Name: "General Medicine", Description: "Primary and internal medicine", Floor: intPtr(1), Phone: "555-0100"},
}

var seedDoctors = []seedDoctor{
	{"Sarah", "Mitchell", "sarah.mitchell@cloudcare.example", "Cardiologist", "Cardiology", 12},
	{"James", "Okafor", "james.okafor@cloudcare.example", "Neurologist", "Neurology", 9},
	{"Elena", "Rossi", "elena.rossi@cloudcare.example", "Orthopedic Surgeon", "Orthopedics", 15},
	{"Priya", "Nair", "priya.nair@cloudcare.example", "Pediatrician", "Pediatrics", 7},
	{"Daniel", "Kim", "daniel.kim@cloudcare.example", "Internist", "General Medicine", 5},
}

func intPtr(n int) *int { return &n }

func seedCmd() *cobra.Command {
	var adminEmail, adminPassword string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo departments, doctors and an admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer env.close()

			if err := env.store.EnsureIndexes(cmd.Context()); err != nil {
				return fmt.Errorf("ensure indexes: %w", err)
			}
			return seed(cmd.Context(), env, adminEmail, adminPassword)
		},
	}
	cmd.Flags().StringVar(&adminEmail, "admin-email", "admin@cloudcare.example", "email of the seeded admin account")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "admin123", "password of the seeded admin account")
	return cmd
}

// seed is idempotent: records that already exist are skipped.
func seed(ctx context.Context, env *app, adminEmail, adminPassword string) error {
	repos := env.repositories()
	departments := services.NewDepartmentService(repos)
	doctors := services.NewDoctorService(repos)

	for _, d := range seedDepartments {
		err := departments.Create(ctx, &d)
		if skip, err := duplicate(err); err != nil {
			return fmt.Errorf("seed department %s: %w", d.Name, err)
		} else if !skip {
			env.log.Info().Str("department", d.Name).Msg("seeded department")
		}
	}

	for _, sd := range seedDoctors {
		deptID, err := departments.Resolve(ctx, sd.department)
		if err != nil {
			return fmt.Errorf("resolve department %s: %w", sd.department, err)
		}
		d := &models.Doctor{
			FirstName:      sd.first,
			LastName:       sd.last,
			Email:          sd.email,
			Phone:          "555-0199",
			Specialization: sd.specialization,
			Department:     deptID,
			Experience:     sd.experience,
			Rating:         4.5,
			AvailableSlots: []string{"09:00", "10:00", "11:00", "14:00", "15:00"},
		}
		err = doctors.Create(ctx, d)
		if skip, err := duplicate(err); err != nil {
			return fmt.Errorf("seed doctor %s: %w", sd.email, err)
		} else if !skip {
			env.log.Info().Str("doctor", d.DisplayName()).Msg("seeded doctor")
		}
	}

	auth := services.NewAuthService(repos, nil)
	created, err := auth.EnsureUser(ctx, "Administrator", adminEmail, adminPassword, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		env.log.Info().Str("email", utils.NormalizeEmail(adminEmail)).Msg("seeded admin user")
	}
	return nil
}

// duplicate reports whether err is a uniqueness violation, which seeding
// treats as already done. Any other error is returned.
func duplicate(err error) (bool, error) {
	if errors.Is(err, store.ErrDuplicate) {
		return true, nil
	}
	return false, err
}
