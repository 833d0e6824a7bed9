// file: internals/features/lms/guard/controller/guard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	validator "github.com/go-playground/validator/v10"

	gdto "kursusku_backend/internals/features/lms/guard/dto"
	"kursusku_backend/internals/features/lms/guard/service"
	helper "kursusku_backend/internals/helpers"
)

type GuardController struct {
	Service   *service.GuardService
	validator *validator.Validate
}

func NewGuardController(svc *service.GuardService) *GuardController {
	return &GuardController{Service: svc}
}

func (ctl *GuardController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /learning/guard
// Caller (module viewer / quiz starter) bertanggung jawab memanggil ini
// sebelum membuka akses; Guard tidak meng-intercept request secara sentral.
func (ctl *GuardController) Check(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req gdto.GuardCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.ModuleID == uuid.Nil {
		return helper.Error(c, fiber.StatusBadRequest, "module_id wajib")
	}

	decision, err := ctl.Service.Evaluate(c.UserContext(), userID, req.ModuleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Evaluasi akses selesai", decision)
}
