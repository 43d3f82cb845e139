package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pushkit/internal/delivery/api/response"
	"pushkit/internal/domain/entity"
	domainerrors "pushkit/internal/domain/errors"
	"pushkit/internal/domain/resource"
	"pushkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// StreamHandler exposes the event queues
type StreamHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// EnqueueEventRequest is one event submitted by the host. The id is generated when omitted.
type EnqueueEventRequest struct {
	ID        string         `json:"id" validate:"omitempty,uuid"`
	Type      string         `json:"type" validate:"required,max=128"`
	Timestamp *time.Time     `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// SetAnalyticsRequest toggles analytics collection
type SetAnalyticsRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// StreamStatus reports the queue of a stream
type StreamStatus struct {
	Kind    resource.Kind `json:"kind"`
	Pending int64         `json:"pending"`
}

// Enqueue stores an event in the stream named by :kind
func (h *StreamHandler) Enqueue(c echo.Context) error {
	res, err := parseKind(c)
	if err != nil {
		return err
	}

	var req EnqueueEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrInvalidEvent.WithDetails(err.Error())
	}

	event := entity.NewEvent(res.Kind, req.Type, req.Data)
	if req.ID != "" {
		event.ID = uuid.MustParse(req.ID)
	}
	if req.Timestamp != nil {
		event.Timestamp = req.Timestamp.UTC()
	}

	id, err := h.dispatchUC.Enqueue(c.Request().Context(), event)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"id": id.String()})
}

// Flush sends the oldest batch of the stream now
func (h *StreamHandler) Flush(c echo.Context) error {
	res, err := parseKind(c)
	if err != nil {
		return err
	}

	result, err := h.dispatchUC.Flush(c.Request().Context(), res.Kind)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// Status returns the number of pending events of the stream
func (h *StreamHandler) Status(c echo.Context) error {
	res, err := parseKind(c)
	if err != nil {
		return err
	}

	pending, err := h.dispatchUC.Pending(c.Request().Context(), res.Kind)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, StreamStatus{Kind: res.Kind, Pending: pending})
}

// GetAnalytics returns whether analytics collection is enabled
func (h *StreamHandler) GetAnalytics(c echo.Context) error {
	enabled, err := h.dispatchUC.AnalyticsEnabled(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"enabled": enabled})
}

// SetAnalytics toggles analytics collection
func (h *StreamHandler) SetAnalytics(c echo.Context) error {
	var req SetAnalyticsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid analytics input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.dispatchUC.SetAnalyticsEnabled(c.Request().Context(), *req.Enabled); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]bool{"enabled": *req.Enabled})
}

func parseKind(c echo.Context) (resource.Resource, error) {
	res, err := resource.Parse(c.Param("kind"))
	if err != nil {
		return resource.Resource{}, domainerrors.ErrUnknownResource.WithDetails(c.Param("kind"))
	}

	return res, nil
}
