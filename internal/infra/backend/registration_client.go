package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"pushkit/config"
	"pushkit/internal/domain/entity"
	"pushkit/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	registrationPath      = "registration"
	defaultRequestTimeout = 30 * time.Second
	maxErrorBodyBytes     = 4 << 10
)

// registrationRequest is the body of POST /registration
type registrationRequest struct {
	PlatformUUID    string   `json:"platform_uuid"`
	PlatformSecret  string   `json:"platform_secret"`
	DeviceAlias     string   `json:"device_alias,omitempty"`
	MessagingToken  string   `json:"messaging_token"`
	Categories      []string `json:"categories,omitempty"`
	OperatingSystem string   `json:"operating_system,omitempty"`
	OSVersion       string   `json:"os_version,omitempty"`
	DeviceType      string   `json:"device_type,omitempty"`
}

type registrationResponse struct {
	DeviceID string `json:"device_id"`
}

type registrationClient struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRegistrationClient creates an HTTP client for the backend registration API
func NewRegistrationClient(cfg *config.Config, logger *slog.Logger) service.RegistrationClient {
	timeout := defaultRequestTimeout
	if cfg.Registration != nil && cfg.Registration.Timeout > 0 {
		timeout = cfg.Registration.Timeout
	}

	return newRegistrationClient(&http.Client{Timeout: timeout}, logger)
}

func newRegistrationClient(httpClient *http.Client, logger *slog.Logger) *registrationClient {
	return &registrationClient{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Register posts the device record and returns the backend device id
func (c *registrationClient) Register(ctx context.Context, params *entity.RegistrationParameters, token string) (string, error) {
	endpoint, err := url.JoinPath(params.ServiceBaseURL, registrationPath)
	if err != nil {
		return "", errors.Wrap(err, "build registration url")
	}

	body, err := json.Marshal(registrationRequest{
		PlatformUUID:    params.VariantID,
		PlatformSecret:  params.VariantSecret,
		DeviceAlias:     params.DeviceAlias,
		MessagingToken:  token,
		Categories:      params.Categories,
		OperatingSystem: params.OperatingSystem,
		OSVersion:       params.OSVersion,
		DeviceType:      params.DeviceType,
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := newRequest(ctx, http.MethodPost, endpoint, params, body)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "register device")
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		c.logFailure(ctx, "register device", resp)

		return "", &service.StatusError{Operation: "register device", StatusCode: resp.StatusCode}
	}

	var decoded registrationResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", errors.Wrap(err, "decode registration response")
	}
	if decoded.DeviceID == "" {
		return "", errors.New("registration response has no device_id")
	}

	return decoded.DeviceID, nil
}

// Unregister deletes the device record; 404 maps to ErrDeviceNotRegistered
func (c *registrationClient) Unregister(ctx context.Context, params *entity.RegistrationParameters, deviceID string) error {
	endpoint, err := url.JoinPath(params.ServiceBaseURL, registrationPath, url.PathEscape(deviceID))
	if err != nil {
		return errors.Wrap(err, "build unregistration url")
	}

	req, err := newRequest(ctx, http.MethodDelete, endpoint, params, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "unregister device")
	}
	defer resp.Body.Close()

	switch {
	case isSuccess(resp.StatusCode):
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errors.WithStack(service.ErrDeviceNotRegistered)
	default:
		c.logFailure(ctx, "unregister device", resp)

		return &service.StatusError{Operation: "unregister device", StatusCode: resp.StatusCode}
	}
}

func (c *registrationClient) logFailure(ctx context.Context, operation string, resp *http.Response) {
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	c.logger.WarnContext(ctx, "Backend request failed",
		slog.String("operation", operation),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(snippet)),
	)
}

func newRequest(ctx context.Context, method, endpoint string, params *entity.RegistrationParameters, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(params.VariantID, params.VariantSecret)

	return req, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
