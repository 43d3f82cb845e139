package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pushkit/config"
	deliverycontext "pushkit/internal/delivery/context"
	"pushkit/internal/domain/entity"
	domainerrors "pushkit/internal/domain/errors"
	"pushkit/internal/domain/resource"
	"pushkit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenValidator checks the OIDC token of a push request
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler records a push_received receipt for every push message delivered to the device
type PushHandler struct {
	verifyAuth bool
	audience   string
	validate   tokenValidator
	recorder   usecase.EventRecorder
	logger     *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Recorder usecase.EventRecorder
}

// NewPushHandler creates a new push receipt handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validate: idtoken.Validate,
		recorder: params.Recorder,
		logger:   params.Logger,
	}
	if push := params.Config.Push; push != nil {
		h.verifyAuth = push.VerifyAuth
		h.audience = push.Audience
	}

	return h
}

// HandlePush handles a Pub/Sub push request. Redeliveries of the same message
// map to the same event id and are acknowledged without a second receipt.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.LoggerOrDefault(ctx, h.logger)

	if h.verifyAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			logger.Warn("[Push] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil || pushMsg.Message.MessageID == "" {
		logger.Error("[Push] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	payload, err := decodePayload(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Push] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	for k, v := range pushMsg.Message.Attributes {
		if _, ok := payload[k]; !ok {
			payload[k] = v
		}
	}
	if _, ok := payload["message_id"]; !ok {
		payload["message_id"] = pushMsg.Message.MessageID
	}

	event := entity.NewEvent(resource.KindReceipts, entity.EventTypePushReceived, payload)
	event.ID = receiptID(pushMsg.Subscription, pushMsg.Message.MessageID)

	if _, err := h.recorder.Enqueue(ctx, event); err != nil {
		if errors.Is(err, domainerrors.ErrEventAlreadyQueued) {
			logger.Info("[Push] Receipt already recorded", slog.String("message_id", pushMsg.Message.MessageID))

			return c.NoContent(http.StatusOK)
		}

		logger.Error("[Push] Failed to record receipt",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryable(err)),
		)
		// 503 makes Pub/Sub redeliver; 200 drops messages that can never succeed.
		if isRetryable(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	logger.Info("[Push] Receipt recorded",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("event_id", event.ID.String()),
	)

	return c.NoContent(http.StatusOK)
}

// receiptID derives a stable event id from the delivery identity.
func receiptID(subscription, messageID string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(subscription+"/"+messageID))
}

func decodePayload(data string) (map[string]any, error) {
	payload := map[string]any{}
	if data == "" {
		return payload, nil
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode base64")
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, errors.Wrap(err, "decode json")
	}

	return payload, nil
}

// isRetryable reports storage failures; validation errors are final.
func isRetryable(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	return true
}

func (h *PushHandler) verifyToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing or malformed authorization header")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}

	return nil
}
