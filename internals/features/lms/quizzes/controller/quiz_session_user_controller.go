// file: internals/features/lms/quizzes/controller/quiz_session_user_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	validator "github.com/go-playground/validator/v10"

	qdto "kursusku_backend/internals/features/lms/quizzes/dto"
	"kursusku_backend/internals/features/lms/quizzes/service"
	helper "kursusku_backend/internals/helpers"
)

type QuizSessionUserController struct {
	Service   *service.QuizSessionService
	validator *validator.Validate
}

func NewQuizSessionUserController(svc *service.QuizSessionService) *QuizSessionUserController {
	return &QuizSessionUserController{Service: svc}
}

func (ctl *QuizSessionUserController) ensureValidator() {
	if ctl.validator == nil {
		ctl.validator = validator.New()
	}
}

// POST /quizzes/:id/start
func (ctl *QuizSessionUserController) Start(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "quiz_id tidak valid")
	}

	res, err := ctl.Service.Start(c.UserContext(), quizID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Session quiz siap", qdto.NewStartQuizResponse(res))
}

// POST /quiz-sessions/:id/submit
func (ctl *QuizSessionUserController) Submit(c *fiber.Ctx) error {
	ctl.ensureValidator()

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "session_id tidak valid")
	}

	var req qdto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctl.Service.Submit(c.UserContext(), req.ToInput(sessionID, userID))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Quiz selesai dinilai", res)
}
