// Package resource maps event stream kinds to the collector resource that receives them.
package resource

import (
	"strings"

	"pushkit/internal/errors"
)

// Kind identifies an event stream.
type Kind string

const (
	// KindAnalytics carries analytics events such as "device_registered".
	KindAnalytics Kind = "analytics"
	// KindReceipts carries push message receipts such as "push_received".
	KindReceipts Kind = "receipts"
)

// ErrUnknownResource is returned when a kind has no entry in the resource table.
var ErrUnknownResource = errors.New("unknown resource")

// Resource describes where a stream is delivered.
type Resource struct {
	Kind Kind
	// Path is relative to the backend base URL.
	Path string
	// Subject is appended to broker topics/subjects.
	Subject string
	// RequiresAnalytics marks streams gated by the analytics-enabled flag.
	RequiresAnalytics bool
}

var table = []Resource{
	{
		Kind:              KindAnalytics,
		Path:              "events",
		Subject:           "events",
		RequiresAnalytics: true,
	},
	{
		Kind:    KindReceipts,
		Path:    "message_receipt",
		Subject: "receipts",
	},
}

// Lookup resolves a kind to its resource.
func Lookup(kind Kind) (Resource, error) {
	for _, res := range table {
		if res.Kind == kind {
			return res, nil
		}
	}

	return Resource{}, errors.Wrapf(ErrUnknownResource, "kind %q", kind)
}

// Parse resolves a raw path segment, ignoring case and surrounding spaces.
func Parse(raw string) (Resource, error) {
	return Lookup(Kind(strings.ToLower(strings.TrimSpace(raw))))
}

// All returns every resource in flush order.
func All() []Resource {
	out := make([]Resource, len(table))
	copy(out, table)

	return out
}
