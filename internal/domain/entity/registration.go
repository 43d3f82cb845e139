package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"time"
)

// RegistrationParameters identifies the application and device towards the backend.
type RegistrationParameters struct {
	PlatformSenderID string   `json:"platform_sender_id" validate:"required"`
	VariantID        string   `json:"variant_id" validate:"required"`
	VariantSecret    string   `json:"variant_secret" validate:"required"`
	DeviceAlias      string   `json:"device_alias"`
	ServiceBaseURL   string   `json:"service_base_url" validate:"required,url"`
	Categories       []string `json:"categories,omitempty"`
	OperatingSystem  string   `json:"operating_system,omitempty"`
	OSVersion        string   `json:"os_version,omitempty"`
	DeviceType       string   `json:"device_type,omitempty"`
}

// Clone returns a deep copy.
func (p *RegistrationParameters) Clone() *RegistrationParameters {
	if p == nil {
		return nil
	}
	cloned := *p
	cloned.Categories = slices.Clone(p.Categories)

	return &cloned
}

// Equal compares every field. Two nil values are equal.
func (p *RegistrationParameters) Equal(other *RegistrationParameters) bool {
	if p == nil || other == nil {
		return p == nil && other == nil
	}

	return p.PlatformSenderID == other.PlatformSenderID &&
		p.VariantID == other.VariantID &&
		p.VariantSecret == other.VariantSecret &&
		p.DeviceAlias == other.DeviceAlias &&
		p.ServiceBaseURL == other.ServiceBaseURL &&
		slices.Equal(p.Categories, other.Categories) &&
		p.OperatingSystem == other.OperatingSystem &&
		p.OSVersion == other.OSVersion &&
		p.DeviceType == other.DeviceType
}

// Hash fingerprints the parameters so a change can be detected across restarts
// without persisting the secret itself.
func (p *RegistrationParameters) Hash() string {
	if p == nil {
		return ""
	}

	fields := []string{
		p.PlatformSenderID,
		p.VariantID,
		p.VariantSecret,
		p.DeviceAlias,
		p.ServiceBaseURL,
		strings.Join(p.Categories, ","),
		p.OperatingSystem,
		p.OSVersion,
		p.DeviceType,
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, "\x1f")))

	return hex.EncodeToString(sum[:])
}

// RegistrationState is the persisted outcome of the last successful registration.
type RegistrationState struct {
	MessagingToken  string    `json:"messaging_token,omitempty"`
	BackendDeviceID string    `json:"backend_device_id,omitempty"`
	AppVersion      int       `json:"app_version"`
	ParamsHash      string    `json:"-"`
	RegisteredAt    time.Time `json:"registered_at,omitzero"`

	// ServiceBaseURL and VariantID locate the backend record; the secret is never stored.
	ServiceBaseURL string `json:"-"`
	VariantID      string `json:"-"`
}

// IsRegistered reports whether both the token and the backend record are known.
func (s *RegistrationState) IsRegistered() bool {
	return s != nil && s.MessagingToken != "" && s.BackendDeviceID != ""
}

// IsEmpty reports whether nothing is stored.
func (s *RegistrationState) IsEmpty() bool {
	return s == nil || (s.MessagingToken == "" && s.BackendDeviceID == "")
}

// Matches reports whether the state was produced by the same app version and parameters.
func (s *RegistrationState) Matches(appVersion int, paramsHash string) bool {
	return s != nil && s.AppVersion == appVersion && s.ParamsHash == paramsHash
}

// RegistrationPhase names a step of a registration attempt.
type RegistrationPhase string

const (
	PhaseInitial            RegistrationPhase = "INITIAL"
	PhaseRequestingToken    RegistrationPhase = "REQUESTING_TOKEN"
	PhaseTokenObtained      RegistrationPhase = "TOKEN_OBTAINED"
	PhaseRegisteringBackend RegistrationPhase = "REGISTERING_BACKEND"
	PhasePersisting         RegistrationPhase = "PERSISTING"
	PhaseDone               RegistrationPhase = "DONE"
	PhaseFailed             RegistrationPhase = "FAILED"
)
