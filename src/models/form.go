package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout types selectable in the form.
const (
	WorkoutCardio        = "Cardio"
	WorkoutWeightlifting = "Weightlifting"
	WorkoutBodybuilding  = "Bodybuilding"
	WorkoutCrossfit      = "Crossfit"
)

// MuscleGroups is the fixed vocabulary of the "muscles hit" checkbox set.
var MuscleGroups = []string{"Leg", "Upper Body", "Lower Body", "Abs"}

// IsMuscleGroup reports whether tag belongs to the checkbox vocabulary.
func IsMuscleGroup(tag string) bool {
	for _, g := range MuscleGroups {
		if g == tag {
			return true
		}
	}
	return false
}

// Options of the "would you repeat this workout" radio group. RepeatOptionOthers
// is editor state only and is never stored in a record.
const (
	RepeatOptionYes    = "yes"
	RepeatOptionNo     = "no"
	RepeatOptionMaybe  = "maybe"
	RepeatOptionOthers = "Others"
)

// IsFixedRepeatOption reports whether v is one of the fixed radio answers.
func IsFixedRepeatOption(v string) bool {
	return v == RepeatOptionYes || v == RepeatOptionNo || v == RepeatOptionMaybe
}

// RepeatAnswer is the "would repeat" value: either one of the fixed options,
// a free-text answer (the Others branch), or not answered yet. On the wire it
// is a plain string - the fixed tag, the free text, or "" for unanswered.
type RepeatAnswer struct {
	fixed bool
	text  string
}

// FixedAnswer builds a RepeatAnswer from one of yes/no/maybe.
func FixedAnswer(option string) RepeatAnswer {
	return RepeatAnswer{fixed: true, text: option}
}

// OtherAnswer builds the free-text branch. Empty text collapses to Unanswered.
func OtherAnswer(text string) RepeatAnswer {
	if text == "" {
		return RepeatAnswer{}
	}
	return RepeatAnswer{text: text}
}

// Unanswered is the explicit "not answered yet" value.
func Unanswered() RepeatAnswer {
	return RepeatAnswer{}
}

// ParseRepeatAnswer classifies a wire string into the union.
func ParseRepeatAnswer(s string) RepeatAnswer {
	if IsFixedRepeatOption(s) {
		return FixedAnswer(s)
	}
	return OtherAnswer(s)
}

func (r RepeatAnswer) IsFixed() bool      { return r.fixed }
func (r RepeatAnswer) IsOther() bool      { return !r.fixed && r.text != "" }
func (r RepeatAnswer) IsUnanswered() bool { return !r.fixed && r.text == "" }

// String returns the persisted wire form.
func (r RepeatAnswer) String() string { return r.text }

func (r RepeatAnswer) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.text)
}

func (r *RepeatAnswer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseRepeatAnswer(s)
	return nil
}

func (r RepeatAnswer) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(r.text)
}

func (r *RepeatAnswer) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	var s string
	if err := raw.Unmarshal(&s); err != nil {
		return err
	}
	*r = ParseRepeatAnswer(s)
	return nil
}

// FormRecord is one persisted workout session entry.
type FormRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Owner            primitive.ObjectID `bson:"owner" json:"owner"`
	WorkoutTitle     string             `bson:"workout_title" json:"workout_title" example:"Leg Day"`
	CompletionDate   time.Time          `bson:"completion_date" json:"completion_date"`
	WorkoutType      string             `bson:"workout_type" json:"workout_type" example:"Weightlifting"`
	Checkboxes       []string           `bson:"checkboxes" json:"checkboxes" example:"Leg,Abs"`
	Updates          RepeatAnswer       `bson:"updates" json:"updates"`
	DifficultyRating int                `bson:"difficulty_rating" json:"difficulty_rating" example:"7"`
	Ongoing          bool               `bson:"ongoing" json:"ongoing"`
	FormImage        string             `bson:"form_image,omitempty" json:"form_image,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FormDraft carries the mutable fields of a record, without id/owner.
type FormDraft struct {
	WorkoutTitle     string       `bson:"workout_title" json:"workout_title" validate:"required"`
	CompletionDate   time.Time    `bson:"completion_date" json:"completion_date"`
	WorkoutType      string       `bson:"workout_type" json:"workout_type" validate:"required,oneof=Cardio Weightlifting Bodybuilding Crossfit"`
	Checkboxes       []string     `bson:"checkboxes" json:"checkboxes" validate:"unique,dive,oneof=Leg 'Upper Body' 'Lower Body' Abs"`
	Updates          RepeatAnswer `bson:"updates" json:"updates" validate:"-"`
	DifficultyRating int          `bson:"difficulty_rating" json:"difficulty_rating" validate:"min=0,max=10"`
	Ongoing          bool         `bson:"ongoing" json:"ongoing"`
	FormImage        string       `bson:"form_image" json:"form_image"`
}

// DateOnly drops the time-of-day component, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewFormDraft returns a draft with the defaults a fresh editor starts from.
func NewFormDraft() FormDraft {
	return FormDraft{
		CompletionDate:   DateOnly(time.Now()),
		WorkoutType:      WorkoutCardio,
		Checkboxes:       []string{},
		Updates:          Unanswered(),
		DifficultyRating: 0,
	}
}

// FillDefaults resolves the optional fields a client may leave out of the
// body: a zero completion date becomes today and a nil checkbox set becomes
// the empty set, so neither a zero time nor BSON null is ever stored.
func (d *FormDraft) FillDefaults() {
	if d.CompletionDate.IsZero() {
		d.CompletionDate = DateOnly(time.Now())
	}
	if d.Checkboxes == nil {
		d.Checkboxes = []string{}
	}
}

// Draft copies the mutable fields of a record for the edit path.
func (f *FormRecord) Draft() FormDraft {
	boxes := make([]string, len(f.Checkboxes))
	copy(boxes, f.Checkboxes)
	return FormDraft{
		WorkoutTitle:     f.WorkoutTitle,
		CompletionDate:   f.CompletionDate,
		WorkoutType:      f.WorkoutType,
		Checkboxes:       boxes,
		Updates:          f.Updates,
		DifficultyRating: f.DifficultyRating,
		Ongoing:          f.Ongoing,
		FormImage:        f.FormImage,
	}
}

// FormRecordSummary is the card view returned by the list endpoint.
type FormRecordSummary struct {
	ID             primitive.ObjectID `json:"id"`
	WorkoutTitle   string             `json:"workout_title"`
	CompletionDate time.Time          `json:"completion_date"`
	WorkoutType    string             `json:"workout_type"`
	FormImage      string             `json:"form_image,omitempty"`
}

// Summary projects a record onto its list-card view.
func (f *FormRecord) Summary() FormRecordSummary {
	return FormRecordSummary{
		ID:             f.ID,
		WorkoutTitle:   f.WorkoutTitle,
		CompletionDate: f.CompletionDate,
		WorkoutType:    f.WorkoutType,
		FormImage:      f.FormImage,
	}
}
