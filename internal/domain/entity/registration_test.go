package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testParameters() *RegistrationParameters {
	return &RegistrationParameters{
		PlatformSenderID: "sender-1",
		VariantID:        "variant-1",
		VariantSecret:    "secret-1",
		DeviceAlias:      "alice@example.com",
		ServiceBaseURL:   "https://push.example.com/api",
		Categories:       []string{"news", "sports"},
	}
}

func TestRegistrationParameters_Equal(t *testing.T) {
	base := testParameters()

	tests := []struct {
		name   string
		mutate func(p *RegistrationParameters)
		want   bool
	}{
		{name: "identical", mutate: func(p *RegistrationParameters) {}, want: true},
		{name: "sender", mutate: func(p *RegistrationParameters) { p.PlatformSenderID = "other" }, want: false},
		{name: "variant", mutate: func(p *RegistrationParameters) { p.VariantID = "other" }, want: false},
		{name: "secret", mutate: func(p *RegistrationParameters) { p.VariantSecret = "other" }, want: false},
		{name: "alias", mutate: func(p *RegistrationParameters) { p.DeviceAlias = "" }, want: false},
		{name: "url", mutate: func(p *RegistrationParameters) { p.ServiceBaseURL = "https://other" }, want: false},
		{name: "categories", mutate: func(p *RegistrationParameters) { p.Categories = []string{"news"} }, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base.Clone()
			tt.mutate(other)

			assert.Equal(t, tt.want, base.Equal(other))
			assert.Equal(t, tt.want, base.Hash() == other.Hash())
		})
	}
}

func TestRegistrationParameters_EqualNil(t *testing.T) {
	var a, b *RegistrationParameters

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(testParameters()))
	assert.False(t, testParameters().Equal(nil))
	assert.Empty(t, a.Hash())
}

func TestRegistrationParameters_CloneIsDeep(t *testing.T) {
	original := testParameters()
	cloned := original.Clone()
	cloned.Categories[0] = "changed"

	assert.Equal(t, "news", original.Categories[0])
}

func TestRegistrationState_Matches(t *testing.T) {
	state := &RegistrationState{MessagingToken: "tok", BackendDeviceID: "dev", AppVersion: 3, ParamsHash: "h"}

	assert.True(t, state.IsRegistered())
	assert.True(t, state.Matches(3, "h"))
	assert.False(t, state.Matches(4, "h"))
	assert.False(t, state.Matches(3, "x"))

	var empty *RegistrationState
	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsRegistered())
}
