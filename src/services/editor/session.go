package editor

import (
	"errors"

	"Backend-FitForm/src/models"

	"github.com/google/uuid"
)

// Session states. Viewing means the surface is read-only (list display);
// Editing means field events mutate the draft.
const (
	StateViewing = "viewing"
	StateEditing = "editing"
)

var (
	ErrSessionNotFound = errors.New("editor session not found")
	ErrNotEditing      = errors.New("session is not in editing state")
)

// Field names accepted by Apply. They mirror the form inputs of the client.
const (
	FieldTitle       = "workout_title"
	FieldDate        = "completion_date"
	FieldWorkoutType = "workout_type"
	FieldMuscleGroup = "muscle_group"
	FieldRepeat      = "updates"
	FieldRepeatText  = "others_text"
	FieldDifficulty  = "difficulty_rating"
	FieldOngoing     = "ongoing"
)

// FieldEvent is one user gesture against a single field.
type FieldEvent struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Session is one user's in-flight draft. FormID is empty on the create path
// and carries the record id on the edit path. UploadedImage tracks an image
// uploaded during this session but not yet submitted, so a dismissed draft
// can hand it to the cleanup job.
type Session struct {
	ID            string           `json:"id"`
	Owner         string           `json:"owner"`
	FormID        string           `json:"formId,omitempty"`
	State         string           `json:"state"`
	Draft         models.FormDraft `json:"draft"`
	UploadedImage string           `json:"uploadedImage,omitempty"`
}

// BeginCreate opens an editing session over a default draft.
func BeginCreate(owner string) *Session {
	return &Session{
		ID:    uuid.NewString(),
		Owner: owner,
		State: StateEditing,
		Draft: models.NewFormDraft(),
	}
}

// BeginEdit opens an editing session preloaded from an existing record.
func BeginEdit(owner string, record *models.FormRecord) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Owner:  owner,
		FormID: record.ID.Hex(),
		State:  StateEditing,
		Draft:  record.Draft(),
	}
}

// Apply runs one field event through the draft transitions. Events are only
// accepted while editing; an unknown field is a validation error.
func (s *Session) Apply(ev FieldEvent) error {
	if s.State != StateEditing {
		return ErrNotEditing
	}

	switch ev.Field {
	case FieldTitle:
		s.Draft = SetTitle(s.Draft, ev.Value)
	case FieldDate:
		s.Draft = SetCompletionDate(s.Draft, ev.Value)
	case FieldWorkoutType:
		s.Draft = SetWorkoutType(s.Draft, ev.Value)
	case FieldMuscleGroup:
		s.Draft = ToggleMuscleGroup(s.Draft, ev.Value)
	case FieldRepeat:
		s.Draft = ChooseRepeatOption(s.Draft, ev.Value)
	case FieldRepeatText:
		s.Draft = SetRepeatText(s.Draft, ev.Value)
	case FieldDifficulty:
		s.Draft = SetDifficulty(s.Draft, ev.Value)
	case FieldOngoing:
		s.Draft = SetOngoing(s.Draft, ev.Value)
	default:
		return &models.ValidationError{Field: ev.Field, Reason: "unknown editor field"}
	}

	return nil
}

// AttachUpload records a completed image upload against the draft. The
// previously uploaded-but-unsubmitted image name is returned so the caller
// can schedule its cleanup.
func (s *Session) AttachUpload(url, name string) (orphaned string, err error) {
	if s.State != StateEditing {
		return "", ErrNotEditing
	}
	orphaned = s.UploadedImage
	s.Draft = AttachImage(s.Draft, url)
	s.UploadedImage = name
	return orphaned, nil
}

// Dismiss abandons the draft and returns the session to the read-only state.
func (s *Session) Dismiss() {
	s.State = StateViewing
}

// IsCreate reports whether submit should go down the create path.
func (s *Session) IsCreate() bool {
	return s.FormID == ""
}
