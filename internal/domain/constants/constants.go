// Package constants holds values shared across layers.
package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publishing providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Event types carried on the order topic
const (
	EventTypeOrderPlaced = "order.placed"
)
