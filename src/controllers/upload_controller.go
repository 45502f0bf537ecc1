package controllers

import (
	"errors"

	"Backend-FitForm/src/services/uploads"
	"Backend-FitForm/src/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadFormImage godoc
// @Summary      Upload a form image
// @Description  Stores an image file and returns the public url plus the stored name for the editor callback
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Image file"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /uploads/images [post]
func UploadFormImage(c *fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Failed to read file: "+err.Error())
	}

	name, err := uploads.NewImageName(file.Filename)
	if err != nil {
		if errors.Is(err, uploads.ErrUnsupportedImage) {
			return utils.HandleError(c, fiber.StatusBadRequest, "Unsupported image type")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := uploads.EnsureDir(); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to prepare upload directory")
	}
	if err := c.SaveFile(file, uploads.FilePath(name)); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to save file: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":  uploads.ImageURL(name),
		"name": name,
	})
}
