package handler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/domain/match"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"
	ucmatch "mentor-match/internal/usecase/match"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

type createMatchRequest struct {
	MentorID int64  `json:"mentorId"`
	MenteeID int64  `json:"menteeId"`
	Message  string `json:"message"`
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/received/:userId", h.ListReceived)
	r.Get("/sent/:userId", h.ListSent)
	r.Get("/incoming", h.ListIncoming)
	r.Get("/outgoing", h.ListOutgoing)
	r.Put("/:id/accept", h.Accept)
	r.Put("/:id/reject", h.Reject)
	r.Put("/:id/status", h.SetStatus)
	r.Delete("/:id", h.Cancel)
}

func (h *MatchHandler) Create(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), callerID, ucmatch.CreateInput{
		MentorUserID: req.MentorID,
		MenteeUserID: req.MenteeID,
		Message:      req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, ucmatch.ErrNotMentee):
			return middleware.NewAppError(fiber.StatusUnauthorized, "Only mentees can create requests", nil, err)
		case errors.Is(err, ucmatch.ErrMentorNotFound):
			return middleware.NewAppError(fiber.StatusBadRequest, "Mentor not found", nil, err)
		case errors.Is(err, match.ErrPendingExists):
			return middleware.NewAppError(fiber.StatusBadRequest, "You already have a pending request", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewCreatedResponse(created))
}

func (h *MatchHandler) ListReceived(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	rows, err := h.uc.ListReceived(c.Context(), callerID, userID)
	if err != nil {
		if errors.Is(err, ucmatch.ErrForbidden) {
			return middleware.NewAppError(fiber.StatusForbidden, "Access denied", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewReceivedResponseList(rows))
}

func (h *MatchHandler) ListSent(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	rows, err := h.uc.ListSent(c.Context(), callerID, userID)
	if err != nil {
		if errors.Is(err, ucmatch.ErrForbidden) {
			return middleware.NewAppError(fiber.StatusForbidden, "Access denied", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewSentResponseList(rows))
}

func (h *MatchHandler) ListIncoming(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	rows, err := h.uc.ListIncoming(c.Context(), callerID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewIncomingResponseList(rows))
}

func (h *MatchHandler) ListOutgoing(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	rows, err := h.uc.ListOutgoing(c.Context(), callerID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewOutgoingResponseList(rows))
}

func (h *MatchHandler) Accept(c fiber.Ctx) error {
	return h.mentorTransition(c, h.uc.Accept)
}

func (h *MatchHandler) Reject(c fiber.Ctx) error {
	return h.mentorTransition(c, h.uc.Reject)
}

func (h *MatchHandler) mentorTransition(c fiber.Ctx, op func(ctx context.Context, callerID, requestID int64) (ucmatch.Transitioned, error)) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	t, err := op(c.Context(), callerID, requestID)
	if err != nil {
		return mapTransitionError(err, fiber.StatusUnauthorized)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewTransitionedResponse(t))
}

func (h *MatchHandler) Cancel(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	t, err := h.uc.Cancel(c.Context(), callerID, requestID)
	if err != nil {
		return mapTransitionError(err, fiber.StatusUnauthorized)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewTransitionedResponse(t))
}

// SetStatus is the legacy transition endpoint; it reads the target status
// from the query string and keeps its historical 403 on ownership mismatch.
func (h *MatchHandler) SetStatus(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	status := c.Query("status")
	t, err := h.uc.SetStatus(c.Context(), callerID, requestID, status)
	if err != nil {
		if errors.Is(err, ucmatch.ErrInvalidStatus) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status", nil, err)
		}
		return mapTransitionError(err, fiber.StatusForbidden)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Request %s successfully", t.Status),
	})
}

func mapTransitionError(err error, ownerMismatchStatus int) error {
	switch {
	case errors.Is(err, match.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Request not found", nil, err)
	case errors.Is(err, ucmatch.ErrNotOwner):
		msg := "Unauthorized"
		if ownerMismatchStatus == fiber.StatusForbidden {
			msg = "Access denied"
		}
		return middleware.NewAppError(ownerMismatchStatus, msg, nil, err)
	case errors.Is(err, match.ErrNotPending):
		return middleware.NewAppError(fiber.StatusConflict, "Request is no longer pending", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func pathID(c fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}
