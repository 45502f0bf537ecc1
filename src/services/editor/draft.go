// Package editor holds the in-memory editing rules for a form draft: pure
// field transitions plus a per-user editing session kept in Redis. Every
// transition takes a draft by value and returns the next draft, so a failed
// or rejected input can never corrupt the state the user already built up.
package editor

import (
	"strconv"
	"time"

	"Backend-FitForm/src/models"
)

// SetTitle overwrites the workout title.
func SetTitle(d models.FormDraft, title string) models.FormDraft {
	d.WorkoutTitle = title
	return d
}

// SetWorkoutType accepts only the known workout types; anything else keeps
// the current selection.
func SetWorkoutType(d models.FormDraft, t string) models.FormDraft {
	switch t {
	case models.WorkoutCardio, models.WorkoutWeightlifting, models.WorkoutBodybuilding, models.WorkoutCrossfit:
		d.WorkoutType = t
	}
	return d
}

// ToggleMuscleGroup adds the tag to the checkbox set if absent and removes
// it if present. Tags outside the vocabulary are ignored.
func ToggleMuscleGroup(d models.FormDraft, tag string) models.FormDraft {
	if !models.IsMuscleGroup(tag) {
		return d
	}

	next := make([]string, 0, len(d.Checkboxes)+1)
	found := false
	for _, t := range d.Checkboxes {
		if t == tag {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		next = append(next, tag)
	}

	d.Checkboxes = next
	return d
}

// ChooseRepeatOption handles the radio group. yes/no/maybe become the answer
// directly. Picking Others never stores the literal tag: an existing free
// text answer is kept, otherwise the draft drops back to unanswered until
// text arrives through SetRepeatText.
func ChooseRepeatOption(d models.FormDraft, option string) models.FormDraft {
	switch {
	case models.IsFixedRepeatOption(option):
		d.Updates = models.FixedAnswer(option)
	case option == models.RepeatOptionOthers:
		if d.Updates.IsFixed() {
			d.Updates = models.Unanswered()
		}
	}
	return d
}

// SetRepeatText is the companion input of the Others branch: whatever the
// user types becomes the answer verbatim.
func SetRepeatText(d models.FormDraft, text string) models.FormDraft {
	d.Updates = models.OtherAnswer(text)
	return d
}

// IsOthersSelected derives the radio state from the draft: any value that is
// not one of the fixed options, including not-yet-answered, lights up the
// Others branch.
func IsOthersSelected(d models.FormDraft) bool {
	return !d.Updates.IsFixed()
}

// SetDifficulty parses and clamps the rating to [0,10]. Unparseable input
// keeps the previous value.
func SetDifficulty(d models.FormDraft, raw string) models.FormDraft {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return d
	}
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}
	d.DifficultyRating = n
	return d
}

// SetCompletionDate parses a YYYY-MM-DD date. Invalid input keeps the
// previous valid date.
func SetCompletionDate(d models.FormDraft, raw string) models.FormDraft {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return d
	}
	d.CompletionDate = models.DateOnly(t)
	return d
}

// SetOngoing flips the "would do again" switch. Input that is not a bool
// keeps the previous value.
func SetOngoing(d models.FormDraft, raw string) models.FormDraft {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return d
	}
	d.Ongoing = v
	return d
}

// AttachImage records the uploaded image URL once the upload completes.
func AttachImage(d models.FormDraft, url string) models.FormDraft {
	d.FormImage = url
	return d
}
