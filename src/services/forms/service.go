package forms

import (
	"context"
	"time"

	"Backend-FitForm/src/database"
	"Backend-FitForm/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Every operation here is scoped to the owner: reads and writes filter on
// both _id and owner, so a record belonging to someone else behaves exactly
// like a record that does not exist.

func collection() *mongo.Collection {
	return database.FormCollection
}

// OwnerFilter is the compound filter every single-record operation uses:
// matching on both id and owner makes a foreign record look exactly like a
// missing one.
func OwnerFilter(ownerID, formID primitive.ObjectID) bson.M {
	return bson.M{"_id": formID, "owner": ownerID}
}

// GetUserForms returns every form record owned by the caller, newest first.
func GetUserForms(ctx context.Context, ownerID primitive.ObjectID) ([]models.FormRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := collection().Find(ctx, bson.M{"owner": ownerID}, opts)
	if err != nil {
		return nil, &models.StorageError{Op: "list forms", Err: err}
	}
	defer cursor.Close(ctx)

	var records []models.FormRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, &models.StorageError{Op: "decode forms", Err: err}
	}

	return records, nil
}

// CreateForm validates the draft, stamps id and owner, and persists the
// record in a single insert.
func CreateForm(ctx context.Context, ownerID primitive.ObjectID, draft models.FormDraft) (*models.FormRecord, error) {
	draft.FillDefaults()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	record := &models.FormRecord{
		ID:               primitive.NewObjectID(),
		Owner:            ownerID,
		WorkoutTitle:     draft.WorkoutTitle,
		CompletionDate:   models.DateOnly(draft.CompletionDate),
		WorkoutType:      draft.WorkoutType,
		Checkboxes:       draft.Checkboxes,
		Updates:          draft.Updates,
		DifficultyRating: draft.DifficultyRating,
		Ongoing:          draft.Ongoing,
		FormImage:        draft.FormImage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := collection().InsertOne(ctx, record); err != nil {
		return nil, &models.StorageError{Op: "insert form", Err: err}
	}

	return record, nil
}

// GetFormByID fetches one owned record. A foreign or missing id is
// ErrFormNotFound either way.
func GetFormByID(ctx context.Context, ownerID, formID primitive.ObjectID) (*models.FormRecord, error) {
	var record models.FormRecord
	err := collection().FindOne(ctx, OwnerFilter(ownerID, formID)).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrFormNotFound
		}
		return nil, &models.StorageError{Op: "find form", Err: err}
	}

	return &record, nil
}

// UpdateForm replaces all mutable fields of an owned record in one write.
// Id and owner are never part of the update document.
func UpdateForm(ctx context.Context, ownerID, formID primitive.ObjectID, draft models.FormDraft) (*models.FormRecord, error) {
	draft.FillDefaults()
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"workout_title":     draft.WorkoutTitle,
		"completion_date":   models.DateOnly(draft.CompletionDate),
		"workout_type":      draft.WorkoutType,
		"checkboxes":        draft.Checkboxes,
		"updates":           draft.Updates,
		"difficulty_rating": draft.DifficultyRating,
		"ongoing":           draft.Ongoing,
		"form_image":        draft.FormImage,
		"updatedAt":         time.Now(),
	}}

	result, err := collection().UpdateOne(ctx, OwnerFilter(ownerID, formID), update)
	if err != nil {
		return nil, &models.StorageError{Op: "update form", Err: err}
	}
	if result.MatchedCount == 0 {
		return nil, models.ErrFormNotFound
	}

	return GetFormByID(ctx, ownerID, formID)
}

// DeleteForm removes an owned record permanently. Deleting a missing or
// foreign id is an error, not a no-op.
func DeleteForm(ctx context.Context, ownerID, formID primitive.ObjectID) error {
	result, err := collection().DeleteOne(ctx, OwnerFilter(ownerID, formID))
	if err != nil {
		return &models.StorageError{Op: "delete form", Err: err}
	}
	if result.DeletedCount == 0 {
		return models.ErrFormNotFound
	}

	return nil
}
