package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/handler/v1/request"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/handler/v1/response"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/middleware"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/pkg/jwthelper"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/service"
)

const dateLayout = "2006-01-02"

type EventService interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	ListOrganiserEvents(ctx context.Context, organiserID uint) ([]domain.Event, error)
	CreateEvent(ctx context.Context, event domain.Event, organiserID uint) (domain.Event, error)
	UpdateEvent(ctx context.Context, event domain.Event, organiserID uint) error
	DeleteEvent(ctx context.Context, eventID, organiserID uint) error
}

type RegistrationService interface {
	Register(ctx context.Context, userID uint, role domain.Role, eventID uint) (domain.Registration, error)
}

type EventHandler struct {
	svc    EventService
	regSvc RegistrationService
}

func NewEventHandler(svc EventService, regSvc RegistrationService) *EventHandler {
	return &EventHandler{
		svc:    svc,
		regSvc: regSvc,
	}
}

// HandleListEvents godoc
// @Summary      List all events
// @Description  Public listing of every event with the organiser display name, ordered by date.
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.Events
// @Failure      500  {object}  response.Err
// @Router       /api/events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Events{Events: events})
}

// HandleOrganiserEvents godoc
// @Summary      List the caller's events with registration counts
// @Tags         events
// @Produce      json
// @Success      200  {object}  response.Events
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/organiser/events [get]
// @Security     BearerAuth
func (h *EventHandler) HandleOrganiserEvents(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	events, err := h.svc.ListOrganiserEvents(ctx.Request.Context(), claims.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleOrganiserEvents -> h.svc.ListOrganiserEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Events{Events: events})
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Creates an event owned by the authenticated organiser.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.EventRequest  true  "request body"
// @Success      200      {object}  response.EventCreated
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, respErr := bindEventRequest(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event, claims.UserID)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.EventCreated{
		Success: true,
		Message: "Event created successfully",
		EventID: created.ID,
	})
}

// HandleUpdateEvent godoc
// @Summary      Update an owned event
// @Description  Only the owning organiser may update. A missing event and a foreign event are both 404.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "event ID"
// @Param        request  body      request.EventRequest  true  "request body"
// @Success      200      {object}  response.Message
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/events/{id} [put]
// @Security     BearerAuth
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, respErr := bindEventRequest(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	event.ID = eventID

	if err := h.svc.UpdateEvent(ctx.Request.Context(), event, claims.UserID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Success: true,
		Message: "Event updated successfully",
	})
}

// HandleDeleteEvent godoc
// @Summary      Delete an owned event
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "event ID"
// @Success      200  {object}  response.Message
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/events/{id} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), eventID, claims.UserID); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrEventNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{
		Success: true,
		Message: "Event deleted successfully",
	})
}

// HandleRegisterForEvent godoc
// @Summary      Register the authenticated student for an event
// @Tags         events
// @Produce      json
// @Param        id   path      int  true  "event ID"
// @Success      200  {object}  response.Registered
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /api/events/{id}/register [post]
// @Security     BearerAuth
func (h *EventHandler) HandleRegisterForEvent(ctx *gin.Context) {
	claims, respErr := claimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := parseIDParam(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.regSvc.Register(ctx.Request.Context(), claims.UserID, claims.Role, eventID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOnlyStudents):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrOnlyStudents))
		case errors.Is(err, service.ErrAlreadyRegistered):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAlreadyRegistered))
		default:
			err = fmt.Errorf("v1.HandleRegisterForEvent -> h.regSvc.Register -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.Registered{
		Success:        true,
		Message:        "Successfully registered for event",
		RegistrationID: registration.ID,
	})
}

func claimsFromContext(ctx *gin.Context) (*jwthelper.Claims, *response.Err) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		return nil, response.ErrTokenRequired()
	}

	return claims, nil
}

func bindEventRequest(ctx *gin.Context) (domain.Event, *response.Err) {
	var req request.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return domain.Event{}, response.ErrBadRequest(err)
	}

	if err := req.Validate(); err != nil {
		return domain.Event{}, response.ErrBadRequest(err)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.Event{}, response.ErrBadRequest(fmt.Errorf("invalid date format: %w", err))
	}

	return domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
		Location:    req.Location,
		Category:    req.Category,
		Capacity:    req.Capacity,
	}, nil
}

func parseIDParam(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid event ID: %w", err)
	}

	return uint(id), nil
}
