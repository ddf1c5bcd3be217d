package handler

import (
	"errors"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/domain/user"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"
	ucprofile "mentor-match/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.ProfileUsecase
}

type updateProfileRequest struct {
	Name   *string  `json:"name"`
	Bio    *string  `json:"bio"`
	Image  *string  `json:"image"`
	Skills []string `json:"skills"`
}

func NewUserHandler(uc usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/profile", h.UpdateProfile)
	r.Get("/mentors", h.ListMentors)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	view, err := h.uc.GetCurrentUser(c.Context(), callerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserResponse(view))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	view, err := h.uc.UpdateProfile(c.Context(), callerID, ucprofile.UpdateInput{
		Name:   req.Name,
		Bio:    req.Bio,
		Image:  req.Image,
		Skills: req.Skills,
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserResponse(view))
}

func (h *UserHandler) ListMentors(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	views, err := h.uc.ListMentors(c.Context(), callerID, ucprofile.ListMentorsInput{
		Skill:   c.Query("skill"),
		OrderBy: c.Query("order_by"),
	})
	if err != nil {
		if errors.Is(err, ucprofile.ErrNotMentee) {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Only mentees can access mentor list", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserResponseList(views))
}
