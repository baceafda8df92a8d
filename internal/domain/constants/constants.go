// Package constants defines values shared across layers.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Order-completion event sources
const (
	OrderEventsProviderPubSub = "pubsub"
	OrderEventsProviderKafka  = "kafka"
)

// Staff roles accepted by the admin API
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)
