// Package constants defines cross-cutting enumeration values shared between
// configuration and infrastructure wiring.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub provider selection for the event publisher.
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)
