package form

import (
	"encoding/json"
	"testing"
	"time"

	"Backend-FitForm/src/models"
	forms "Backend-FitForm/src/services/forms"
	"Backend-FitForm/test"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFormRecordViews(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Form Record View Tests")
	defer suiteResult.PrintSummary()

	record := models.FormRecord{
		ID:               primitive.NewObjectID(),
		Owner:            primitive.NewObjectID(),
		WorkoutTitle:     "Leg Day",
		CompletionDate:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		WorkoutType:      models.WorkoutWeightlifting,
		Checkboxes:       []string{"Leg", "Lower Body"},
		Updates:          models.FixedAnswer(models.RepeatOptionYes),
		DifficultyRating: 8,
		Ongoing:          true,
		FormImage:        "/uploads/forms/abc.jpg",
	}

	t.Run("TestSummaryProjection", func(t *testing.T) {
		timer := test.NewTestTimer("Summary Projection")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Summary Projection",
				Duration: duration,
				Passed:   true,
			})
		}()

		summary := record.Summary()

		assert.Equal(t, record.ID, summary.ID)
		assert.Equal(t, "Leg Day", summary.WorkoutTitle)
		assert.Equal(t, record.CompletionDate, summary.CompletionDate)
		assert.Equal(t, models.WorkoutWeightlifting, summary.WorkoutType)
		assert.Equal(t, "/uploads/forms/abc.jpg", summary.FormImage)

		// The card view carries neither owner, rating, checkboxes nor the
		// repeat answer
		payload, err := json.Marshal(summary)
		assert.NoError(t, err)
		assert.NotContains(t, string(payload), "owner")
		assert.NotContains(t, string(payload), "difficulty_rating")
		assert.NotContains(t, string(payload), "checkboxes")
		assert.NotContains(t, string(payload), "updates")
	})

	t.Run("TestDraftIsACopy", func(t *testing.T) {
		timer := test.NewTestTimer("Draft Is A Copy")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Draft Is A Copy",
				Duration: duration,
				Passed:   true,
			})
		}()

		draft := record.Draft()

		assert.Equal(t, record.WorkoutTitle, draft.WorkoutTitle)
		assert.Equal(t, record.Checkboxes, draft.Checkboxes)
		assert.Equal(t, record.Updates, draft.Updates)

		// Mutating the draft's checkbox slice must not reach the record
		draft.Checkboxes[0] = "Abs"
		assert.Equal(t, []string{"Leg", "Lower Body"}, record.Checkboxes)
	})
}

func TestFormDraftFillDefaults(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Form Draft Fill Defaults Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestOmittedDateDefaultsToToday", func(t *testing.T) {
		timer := test.NewTestTimer("Omitted Date Defaults To Today")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Omitted Date Defaults To Today",
				Duration: duration,
				Passed:   true,
			})
		}()

		// A create body with no completion_date at all, as a client may send
		var draft models.FormDraft
		body := []byte(`{"workout_title":"Leg Day","workout_type":"Weightlifting","checkboxes":["Leg"],"updates":"yes","difficulty_rating":7,"ongoing":false}`)
		assert.NoError(t, json.Unmarshal(body, &draft))
		assert.True(t, draft.CompletionDate.IsZero())

		draft.FillDefaults()

		assert.False(t, draft.CompletionDate.IsZero())
		assert.Equal(t, models.DateOnly(time.Now()), draft.CompletionDate)
		assert.NoError(t, draft.Validate())
	})

	t.Run("TestExplicitDateKept", func(t *testing.T) {
		timer := test.NewTestTimer("Explicit Date Kept")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Explicit Date Kept",
				Duration: duration,
				Passed:   true,
			})
		}()

		d := models.NewFormDraft()
		d.CompletionDate = time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		d.FillDefaults()
		assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), d.CompletionDate)
	})

	t.Run("TestNilCheckboxesBecomeEmptySet", func(t *testing.T) {
		timer := test.NewTestTimer("Nil Checkboxes Become Empty Set")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Nil Checkboxes Become Empty Set",
				Duration: duration,
				Passed:   true,
			})
		}()

		var draft models.FormDraft
		body := []byte(`{"workout_title":"Quick Run","workout_type":"Cardio"}`)
		assert.NoError(t, json.Unmarshal(body, &draft))
		assert.Nil(t, draft.Checkboxes)

		draft.FillDefaults()

		assert.NotNil(t, draft.Checkboxes)
		assert.Empty(t, draft.Checkboxes)
	})
}

func TestOwnerScoping(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Owner Scoping Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestFilterMatchesIdAndOwnerTogether", func(t *testing.T) {
		timer := test.NewTestTimer("Filter Matches Id And Owner Together")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Filter Matches Id And Owner Together",
				Duration: duration,
				Passed:   true,
			})
		}()

		owner := primitive.NewObjectID()
		formID := primitive.NewObjectID()

		filter := forms.OwnerFilter(owner, formID)

		assert.Equal(t, bson.M{"_id": formID, "owner": owner}, filter)
	})

	t.Run("TestForeignOwnerNeverMatches", func(t *testing.T) {
		timer := test.NewTestTimer("Foreign Owner Never Matches")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Foreign Owner Never Matches",
				Duration: duration,
				Passed:   true,
			})
		}()

		owner := primitive.NewObjectID()
		intruder := primitive.NewObjectID()
		formID := primitive.NewObjectID()

		// The same record id filtered by a different caller yields a
		// different filter, so the lookup can only ever see its own rows
		assert.NotEqual(t, forms.OwnerFilter(owner, formID), forms.OwnerFilter(intruder, formID))
		assert.Equal(t, intruder, forms.OwnerFilter(intruder, formID)["owner"])
	})
}
