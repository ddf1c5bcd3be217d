package handler

import (
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/domain/user"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ImageHandler struct {
	uc usecase.ProfileUsecase
}

func NewImageHandler(uc usecase.ProfileUsecase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

func (h *ImageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:role/:userId", h.GetImage)
}

// GetImage returns a data URI for a stored image or a role placeholder URL.
// This endpoint never answers 404.
func (h *ImageHandler) GetImage(c fiber.Ctx) error {
	if _, ok := middleware.CallerID(c); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	role := user.Role(c.Params("role"))
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	url, err := h.uc.ImageURL(c.Context(), role, userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"url": url})
}
