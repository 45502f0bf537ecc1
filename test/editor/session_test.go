package editor

import (
	"context"
	"testing"

	"Backend-FitForm/src/models"
	"Backend-FitForm/src/services/editor"
	"Backend-FitForm/test"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSessionLifecycle(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Editor Session Lifecycle Tests")
	defer suiteResult.PrintSummary()

	owner := primitive.NewObjectID().Hex()

	t.Run("TestBeginCreate", func(t *testing.T) {
		timer := test.NewTestTimer("Begin Create")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Begin Create",
				Duration: duration,
				Passed:   true,
			})
		}()

		s := editor.BeginCreate(owner)

		assert.NotEmpty(t, s.ID)
		assert.Equal(t, owner, s.Owner)
		assert.Equal(t, editor.StateEditing, s.State)
		assert.True(t, s.IsCreate())
		assert.Empty(t, s.Draft.WorkoutTitle)
	})

	t.Run("TestBeginEditPreloadsRecord", func(t *testing.T) {
		timer := test.NewTestTimer("Begin Edit Preloads Record")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Begin Edit Preloads Record",
				Duration: duration,
				Passed:   true,
			})
		}()

		record := &models.FormRecord{
			ID:               primitive.NewObjectID(),
			WorkoutTitle:     "Hill Sprints",
			WorkoutType:      models.WorkoutCardio,
			Checkboxes:       []string{"Leg"},
			Updates:          models.FixedAnswer(models.RepeatOptionYes),
			DifficultyRating: 9,
		}

		s := editor.BeginEdit(owner, record)

		assert.False(t, s.IsCreate())
		assert.Equal(t, record.ID.Hex(), s.FormID)
		assert.Equal(t, "Hill Sprints", s.Draft.WorkoutTitle)
		assert.Equal(t, []string{"Leg"}, s.Draft.Checkboxes)
		assert.Equal(t, "yes", s.Draft.Updates.String())

		// The draft is a copy: editing it must not touch the record
		s.Draft = editor.ToggleMuscleGroup(s.Draft, "Abs")
		assert.Equal(t, []string{"Leg"}, record.Checkboxes)
	})

	t.Run("TestApplyFieldEvents", func(t *testing.T) {
		timer := test.NewTestTimer("Apply Field Events")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Apply Field Events",
				Duration: duration,
				Passed:   true,
			})
		}()

		s := editor.BeginCreate(owner)

		assert.NoError(t, s.Apply(editor.FieldEvent{Field: editor.FieldTitle, Value: "Push Day"}))
		assert.NoError(t, s.Apply(editor.FieldEvent{Field: editor.FieldWorkoutType, Value: models.WorkoutBodybuilding}))
		assert.NoError(t, s.Apply(editor.FieldEvent{Field: editor.FieldMuscleGroup, Value: "Upper Body"}))
		assert.NoError(t, s.Apply(editor.FieldEvent{Field: editor.FieldDifficulty, Value: "8"}))

		assert.Equal(t, "Push Day", s.Draft.WorkoutTitle)
		assert.Equal(t, models.WorkoutBodybuilding, s.Draft.WorkoutType)
		assert.Equal(t, []string{"Upper Body"}, s.Draft.Checkboxes)
		assert.Equal(t, 8, s.Draft.DifficultyRating)
	})

	t.Run("TestApplyUnknownFieldFails", func(t *testing.T) {
		timer := test.NewTestTimer("Apply Unknown Field Fails")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Apply Unknown Field Fails",
				Duration: duration,
				Passed:   true,
			})
		}()

		s := editor.BeginCreate(owner)

		err := s.Apply(editor.FieldEvent{Field: "reps", Value: "12"})
		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("TestApplyAfterDismissFails", func(t *testing.T) {
		timer := test.NewTestTimer("Apply After Dismiss Fails")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Apply After Dismiss Fails",
				Duration: duration,
				Passed:   true,
			})
		}()

		s := editor.BeginCreate(owner)
		s.Dismiss()

		err := s.Apply(editor.FieldEvent{Field: editor.FieldTitle, Value: "too late"})
		assert.ErrorIs(t, err, editor.ErrNotEditing)
	})

	t.Run("TestAttachUploadTracksOrphans", func(t *testing.T) {
		timer := test.NewTestTimer("Attach Upload Tracks Orphans")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Attach Upload Tracks Orphans",
				Duration: duration,
				Passed:   true,
			})
		}()

		s := editor.BeginCreate(owner)

		orphaned, err := s.AttachUpload("/uploads/forms/a.jpg", "a.jpg")
		assert.NoError(t, err)
		assert.Empty(t, orphaned)
		assert.Equal(t, "/uploads/forms/a.jpg", s.Draft.FormImage)

		// A second upload in the same session orphans the first
		orphaned, err = s.AttachUpload("/uploads/forms/b.jpg", "b.jpg")
		assert.NoError(t, err)
		assert.Equal(t, "a.jpg", orphaned)
		assert.Equal(t, "b.jpg", s.UploadedImage)
	})
}

func TestMemoryStore(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Memory Store Tests")
	defer suiteResult.PrintSummary()

	ctx := context.Background()
	owner := primitive.NewObjectID().Hex()

	t.Run("TestPutGetDelete", func(t *testing.T) {
		timer := test.NewTestTimer("Put Get Delete")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Put Get Delete",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := editor.NewMemoryStore()
		s := editor.BeginCreate(owner)

		assert.NoError(t, store.Put(ctx, s))

		loaded, err := store.Get(ctx, s.ID)
		assert.NoError(t, err)
		assert.Equal(t, s.ID, loaded.ID)
		assert.Equal(t, owner, loaded.Owner)

		assert.NoError(t, store.Delete(ctx, s.ID))

		_, err = store.Get(ctx, s.ID)
		assert.ErrorIs(t, err, editor.ErrSessionNotFound)
	})

	t.Run("TestGetReturnsCopy", func(t *testing.T) {
		timer := test.NewTestTimer("Get Returns Copy")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Get Returns Copy",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := editor.NewMemoryStore()
		s := editor.BeginCreate(owner)
		assert.NoError(t, store.Put(ctx, s))

		first, err := store.Get(ctx, s.ID)
		assert.NoError(t, err)
		assert.NoError(t, first.Apply(editor.FieldEvent{Field: editor.FieldTitle, Value: "Edited"}))

		// The stored session only changes after a Put
		second, err := store.Get(ctx, s.ID)
		assert.NoError(t, err)
		assert.Empty(t, second.Draft.WorkoutTitle)

		assert.NoError(t, store.Put(ctx, first))
		third, err := store.Get(ctx, s.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Edited", third.Draft.WorkoutTitle)
	})

	t.Run("TestMissingSession", func(t *testing.T) {
		timer := test.NewTestTimer("Missing Session")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{
				Name:     "Missing Session",
				Duration: duration,
				Passed:   true,
			})
		}()

		store := editor.NewMemoryStore()
		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, editor.ErrSessionNotFound)
	})
}
