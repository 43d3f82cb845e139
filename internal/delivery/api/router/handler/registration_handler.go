package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pushkit/internal/delivery/api/response"
	"pushkit/internal/delivery/worker"
	"pushkit/internal/domain/entity"
	domainerrors "pushkit/internal/domain/errors"
	"pushkit/internal/usecase"
	"pushkit/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegistrationHandlerParams holds dependencies for RegistrationHandler, injected by Fx.
type RegistrationHandlerParams struct {
	fx.In

	Jobs           worker.Submitter
	RegistrationUC usecase.RegistrationUsecase
	Logger         *slog.Logger
}

// RegistrationHandler exposes the registration engine to the host application
type RegistrationHandler struct {
	jobs           worker.Submitter
	registrationUC usecase.RegistrationUsecase
	logger         *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler
func NewRegistrationHandler(params RegistrationHandlerParams) *RegistrationHandler {
	return &RegistrationHandler{
		jobs:           params.Jobs,
		registrationUC: params.RegistrationUC,
		logger:         params.Logger,
	}
}

// TokenRequest hands a platform token to the agent
type TokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// RegistrationStatus is the public view of the stored registration state
type RegistrationStatus struct {
	Registered   bool       `json:"registered"`
	DeviceID     string     `json:"device_id,omitempty"`
	Token        string     `json:"token,omitempty"`
	AppVersion   int        `json:"app_version,omitempty"`
	RegisteredAt *time.Time `json:"registered_at,omitempty"`
	VariantID    string     `json:"variant_id,omitempty"`
	DeviceAlias  string     `json:"device_alias,omitempty"`
}

// Register runs a registration with the request parameters
func (h *RegistrationHandler) Register(c echo.Context) error {
	var req entity.RegistrationParameters
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid registration parameters")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrInvalidParameters.WithDetails(err.Error())
	}

	if err := h.jobs.Submit(c.Request().Context(), worker.Job{Kind: worker.JobRegister, Params: &req}); err != nil {
		return err
	}

	return h.respondState(c)
}

// Unregister removes the device registration
func (h *RegistrationHandler) Unregister(c echo.Context) error {
	// The body is optional and may carry only the variant secret.
	var creds entity.RegistrationParameters
	if err := c.Bind(&creds); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid unregister credentials")
	}

	job := worker.Job{Kind: worker.JobUnregister}
	if !creds.Equal(&entity.RegistrationParameters{}) {
		job.Params = &creds
	}

	if err := h.jobs.Submit(c.Request().Context(), job); err != nil {
		return err
	}

	return h.respondState(c)
}

// GetState returns the stored registration state
func (h *RegistrationHandler) GetState(c echo.Context) error {
	return h.respondState(c)
}

// RefreshToken accepts a new platform token; the next registration re-registers with it
func (h *RegistrationHandler) RefreshToken(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.jobs.Submit(c.Request().Context(), worker.Job{Kind: worker.JobRefreshToken, Token: req.Token}); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "token accepted"})
}

func (h *RegistrationHandler) respondState(c echo.Context) error {
	state, err := h.registrationUC.State(c.Request().Context())
	if err != nil {
		return err
	}

	status := RegistrationStatus{
		Registered: state.IsRegistered(),
		DeviceID:   state.BackendDeviceID,
		AppVersion: state.AppVersion,
	}
	if state.MessagingToken != "" {
		status.Token = util.Mask(state.MessagingToken)
	}
	if !state.RegisteredAt.IsZero() {
		at := state.RegisteredAt
		status.RegisteredAt = &at
	}
	if params := h.registrationUC.LastParameters(); params != nil {
		status.VariantID = params.VariantID
		status.DeviceAlias = params.DeviceAlias
	} else {
		status.VariantID = state.VariantID
	}

	return response.Success(c, http.StatusOK, status)
}
