package controllers

import (
	"errors"

	"Backend-FitForm/src/jobs"
	"Backend-FitForm/src/models"
	"Backend-FitForm/src/services/editor"
	forms "Backend-FitForm/src/services/forms"
	"Backend-FitForm/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionStore is wired from main: Redis-backed when Redis is up, in-memory
// otherwise.
var SessionStore editor.Store = editor.NewMemoryStore()

// EnqueueCleanup schedules deletion of an image the server handed out during
// a session. Only names tracked in a session ever reach it. Swappable so
// handler tests can observe scheduling without Redis.
var EnqueueCleanup = jobs.EnqueueCleanupImage

type beginSessionRequest struct {
	FormID string `json:"formId"`
}

type attachImageRequest struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

func sessionResponse(s *editor.Session) fiber.Map {
	return fiber.Map{
		"id":               s.ID,
		"formId":           s.FormID,
		"state":            s.State,
		"draft":            s.Draft,
		"isOthersSelected": editor.IsOthersSelected(s.Draft),
	}
}

// loadOwnedSession fetches a session and hides it from anyone but its owner.
func loadOwnedSession(c *fiber.Ctx) (*editor.Session, error) {
	raw, ok := c.Locals("userId").(string)
	if !ok || raw == "" {
		return nil, ErrUnauthorized
	}

	s, err := SessionStore.Get(c.Context(), c.Params("id"))
	if err != nil {
		return nil, err
	}
	if s.Owner != raw {
		return nil, editor.ErrSessionNotFound
	}
	return s, nil
}

// ErrUnauthorized marks a request that reached a protected handler without a
// usable identity in locals.
var ErrUnauthorized = errors.New("unauthorized")

func editorErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, editor.ErrSessionNotFound):
		return utils.HandleError(c, fiber.StatusNotFound, "Editor session not found")
	case errors.Is(err, editor.ErrNotEditing):
		return utils.HandleError(c, fiber.StatusConflict, "Session is not editing")
	}
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return utils.HandleError(c, fiber.StatusBadRequest, ve.Error())
	}
	if errors.Is(err, models.ErrFormNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
}

// BeginEditorSession godoc
// @Summary      Open an editor session
// @Description  Opens a create session over a blank draft, or an edit session preloaded from an owned form when formId is given
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        body body beginSessionRequest false "Optional form id to edit"
// @Success      201  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /editor/sessions [post]
func BeginEditorSession(c *fiber.Ctx) error {
	owner, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req beginSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	}

	var session *editor.Session
	if req.FormID == "" {
		session = editor.BeginCreate(owner.Hex())
	} else {
		formID, err := primitive.ObjectIDFromHex(req.FormID)
		if err != nil {
			return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
		}
		record, err := forms.GetFormByID(c.Context(), owner, formID)
		if err != nil {
			return editorErrorResponse(c, err)
		}
		session = editor.BeginEdit(owner.Hex(), record)
	}

	if err := SessionStore.Put(c.Context(), session); err != nil {
		return editorErrorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sessionResponse(session))
}

// GetEditorSession godoc
// @Summary      Read an editor session
// @Description  Returns the current draft plus whether the free-text repeat input should be shown
// @Tags         editor
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /editor/sessions/{id} [get]
func GetEditorSession(c *fiber.Ctx) error {
	session, err := loadOwnedSession(c)
	if err != nil {
		return editorErrorResponse(c, err)
	}
	return c.JSON(sessionResponse(session))
}

// ApplyEditorField godoc
// @Summary      Apply a field event
// @Description  Runs one field change through the draft and returns the updated session
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        body body editor.FieldEvent true "Field event"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /editor/sessions/{id} [patch]
func ApplyEditorField(c *fiber.Ctx) error {
	session, err := loadOwnedSession(c)
	if err != nil {
		return editorErrorResponse(c, err)
	}

	var ev editor.FieldEvent
	if err := c.BodyParser(&ev); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	if err := session.Apply(ev); err != nil {
		return editorErrorResponse(c, err)
	}
	if err := SessionStore.Put(c.Context(), session); err != nil {
		return editorErrorResponse(c, err)
	}
	return c.JSON(sessionResponse(session))
}

// AttachEditorImage godoc
// @Summary      Attach an uploaded image
// @Description  Completion callback after an image upload. If the session has already expired the upload is quietly scheduled for cleanup.
// @Tags         editor
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        body body attachImageRequest true "Uploaded image url and stored name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /editor/sessions/{id}/image [post]
func AttachEditorImage(c *fiber.Ctx) error {
	var req attachImageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	session, err := loadOwnedSession(c)
	if err != nil {
		if errors.Is(err, editor.ErrSessionNotFound) {
			// Late callback against a gone session is not an error. The name
			// in the body is unverified caller input, so it is never handed
			// to the cleanup job; the TTL already orphaned the file.
			return c.JSON(fiber.Map{"message": "Session already closed, upload discarded"})
		}
		return editorErrorResponse(c, err)
	}

	orphaned, err := session.AttachUpload(req.URL, req.Name)
	if err != nil {
		return editorErrorResponse(c, err)
	}
	if orphaned != "" {
		EnqueueCleanup(orphaned)
	}

	if err := SessionStore.Put(c.Context(), session); err != nil {
		return editorErrorResponse(c, err)
	}
	return c.JSON(sessionResponse(session))
}

// SubmitEditorSession godoc
// @Summary      Submit an editor session
// @Description  Validates the draft and creates or updates the underlying form. The session survives a failed validation so the user can fix the draft.
// @Tags         editor
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /editor/sessions/{id}/submit [post]
func SubmitEditorSession(c *fiber.Ctx) error {
	session, err := loadOwnedSession(c)
	if err != nil {
		return editorErrorResponse(c, err)
	}
	if session.State != editor.StateEditing {
		return editorErrorResponse(c, editor.ErrNotEditing)
	}

	owner, err := primitive.ObjectIDFromHex(session.Owner)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var record *models.FormRecord
	if session.IsCreate() {
		record, err = forms.CreateForm(c.Context(), owner, session.Draft)
	} else {
		var formID primitive.ObjectID
		formID, err = primitive.ObjectIDFromHex(session.FormID)
		if err == nil {
			record, err = forms.UpdateForm(c.Context(), owner, formID, session.Draft)
		}
	}
	if err != nil {
		// Draft stays alive on failure.
		return editorErrorResponse(c, err)
	}

	if err := SessionStore.Delete(c.Context(), session.ID); err != nil {
		return editorErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message":  "Form saved successfully",
		"data":     record,
		"redirect": "/forms",
	})
}

// DismissEditorSession godoc
// @Summary      Dismiss an editor session
// @Description  Abandons the draft without saving. Any image uploaded during the session is scheduled for cleanup.
// @Tags         editor
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /editor/sessions/{id} [delete]
func DismissEditorSession(c *fiber.Ctx) error {
	session, err := loadOwnedSession(c)
	if err != nil {
		return editorErrorResponse(c, err)
	}

	session.Dismiss()
	if session.UploadedImage != "" {
		EnqueueCleanup(session.UploadedImage)
	}

	if err := SessionStore.Delete(c.Context(), session.ID); err != nil {
		return editorErrorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Draft discarded",
	})
}
