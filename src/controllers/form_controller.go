package controllers

import (
	"errors"

	"Backend-FitForm/src/models"
	forms "Backend-FitForm/src/services/forms"
	"Backend-FitForm/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// callerID resolves the authenticated user from the JWT middleware locals.
func callerID(c *fiber.Ctx) (primitive.ObjectID, error) {
	raw, ok := c.Locals("userId").(string)
	if !ok || raw == "" {
		return primitive.NilObjectID, errors.New("missing user id")
	}
	return primitive.ObjectIDFromHex(raw)
}

func formErrorResponse(c *fiber.Ctx, err error) error {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		return utils.HandleError(c, fiber.StatusBadRequest, ve.Error())
	}
	if errors.Is(err, models.ErrFormNotFound) {
		return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
}

// GetMyForms godoc
// @Summary      List the caller's workout forms
// @Description  Returns card summaries of every form owned by the caller, newest first
// @Tags         forms
// @Produce      json
// @Success      200  {array}   models.FormRecordSummary
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms [get]
func GetMyForms(c *fiber.Ctx) error {
	owner, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	records, err := forms.GetUserForms(c.Context(), owner)
	if err != nil {
		return formErrorResponse(c, err)
	}

	summaries := make([]models.FormRecordSummary, 0, len(records))
	for i := range records {
		summaries = append(summaries, records[i].Summary())
	}
	return c.JSON(summaries)
}

// GetFormByID godoc
// @Summary      Get one workout form
// @Description  Returns the full form record when it exists and belongs to the caller
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.FormRecord
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id} [get]
func GetFormByID(c *fiber.Ctx) error {
	owner, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
	}

	record, err := forms.GetFormByID(c.Context(), owner, formID)
	if err != nil {
		return formErrorResponse(c, err)
	}
	return c.JSON(record)
}

// CreateForm godoc
// @Summary      Create a workout form
// @Description  Validates the submitted draft and stores it as a new record owned by the caller
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.FormDraft true "Form draft"
// @Success      201  {object}  models.FormRecord
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms [post]
func CreateForm(c *fiber.Ctx) error {
	owner, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var draft models.FormDraft
	if err := c.BodyParser(&draft); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	record, err := forms.CreateForm(c.Context(), owner, draft)
	if err != nil {
		return formErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Form created successfully",
		"data":    record,
	})
}

// UpdateForm godoc
// @Summary      Update a workout form
// @Description  Replaces the mutable fields of an existing record owned by the caller
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.FormDraft true "Form draft"
// @Success      200  {object}  models.FormRecord
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id} [put]
func UpdateForm(c *fiber.Ctx) error {
	owner, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
	}

	var draft models.FormDraft
	if err := c.BodyParser(&draft); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	record, err := forms.UpdateForm(c.Context(), owner, formID, draft)
	if err != nil {
		return formErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Form updated successfully",
		"data":    record,
	})
}

// DeleteForm godoc
// @Summary      Delete a workout form
// @Description  Removes a record owned by the caller
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id} [delete]
func DeleteForm(c *fiber.Ctx) error {
	owner, err := callerID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusNotFound, "Form not found")
	}

	if err := forms.DeleteForm(c.Context(), owner, formID); err != nil {
		return formErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Form deleted successfully",
	})
}
