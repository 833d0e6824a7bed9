// file: internals/features/lms/progress/controller/progress_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	validator "github.com/go-playground/validator/v10"

	pdto "kursusku_backend/internals/features/lms/progress/dto"
	"kursusku_backend/internals/features/lms/progress/service"
	helper "kursusku_backend/internals/helpers"
)

type ProgressController struct {
	Service   *service.ProgressService
	validator *validator.Validate
}

func NewProgressController(svc *service.ProgressService) *ProgressController {
	return &ProgressController{Service: svc}
}

func (ctl *ProgressController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /learning/events
func (ctl *ProgressController) SubmitEvent(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req pdto.SubmitEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.FormationID == uuid.Nil || req.ModuleID == uuid.Nil {
		return helper.Error(c, fiber.StatusBadRequest, "formation_id dan module_id wajib")
	}

	if err := ctl.Service.SubmitEvent(c.UserContext(), req.ToInput(userID)); err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Event progress tercatat", fiber.Map{"success": true})
}

// GET /modules/:id/progress
func (ctl *ProgressController) GetModuleProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	moduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "module_id tidak valid")
	}

	row, err := ctl.Service.GetItemProgress(c.UserContext(), userID, moduleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if row == nil {
		return helper.Success(c, "Belum ada progress", pdto.NewEmptyItemProgressResponse(moduleID))
	}
	return helper.Success(c, "Progress ditemukan", pdto.NewItemProgressResponse(row))
}
