// Package constants holds shared enumeration values used across layers.
package constants

// Supported Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
