package seeder

import (
	"context"
	"errors"
	"log"
	"time"

	"Backend-FitForm/src/models"
	"Backend-FitForm/src/services"
	forms "Backend-FitForm/src/services/forms"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	demoEmail    = "demo@fitform.local"
	demoPassword = "demo1234"
)

// SeedSampleForms creates a demo account with a few workout records so a
// fresh database has something to show on the list page.
func SeedSampleForms() {
	ctx := context.Background()

	user, err := services.GetUserByEmail(demoEmail)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("⚠️ Seeder: failed to look up demo user: %v", err)
			return
		}
		user, err = services.RegisterUser(ctx, "Demo User", demoEmail, demoPassword)
		if err != nil {
			log.Printf("⚠️ Seeder: failed to create demo user: %v", err)
			return
		}
	}

	existing, err := forms.GetUserForms(ctx, user.ID)
	if err != nil {
		log.Printf("⚠️ Seeder: failed to check existing forms: %v", err)
		return
	}
	if len(existing) > 0 {
		log.Println("Seeder: demo forms already present, skipping")
		return
	}

	samples := []models.FormDraft{
		{
			WorkoutTitle:     "Monday Leg Day",
			CompletionDate:   models.DateOnly(time.Now().AddDate(0, 0, -3)),
			WorkoutType:      models.WorkoutWeightlifting,
			Checkboxes:       []string{models.MuscleGroups[0], models.MuscleGroups[2]},
			Updates:          models.FixedAnswer(models.RepeatOptionYes),
			DifficultyRating: 8,
			Ongoing:          false,
		},
		{
			WorkoutTitle:     "Morning Run",
			CompletionDate:   models.DateOnly(time.Now().AddDate(0, 0, -1)),
			WorkoutType:      models.WorkoutCardio,
			Checkboxes:       []string{},
			Updates:          models.OtherAnswer("only when it stops raining"),
			DifficultyRating: 4,
			Ongoing:          true,
		},
		{
			WorkoutTitle:     "Crossfit WOD",
			CompletionDate:   models.DateOnly(time.Now()),
			WorkoutType:      models.WorkoutCrossfit,
			Checkboxes:       []string{models.MuscleGroups[1], models.MuscleGroups[3]},
			Updates:          models.Unanswered(),
			DifficultyRating: 10,
			Ongoing:          false,
		},
	}

	for i := range samples {
		if _, err := forms.CreateForm(ctx, user.ID, samples[i]); err != nil {
			log.Printf("⚠️ Seeder: failed to insert %q: %v", samples[i].WorkoutTitle, err)
			return
		}
	}

	log.Printf("✅ Seeder: created %d demo forms for %s", len(samples), demoEmail)
}
