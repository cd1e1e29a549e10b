// Package constants contains string values shared between config, infra and delivery.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Spatial index backends
const (
	IndexBackendMemory    = "memory"
	IndexBackendPostgres  = "postgres"
	IndexBackendRedis     = "redis"
	IndexBackendFirestore = "firestore"
)

// Auth providers
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

// Buzz event types carried on the event topic
const (
	EventBuzzSent     = "buzz.sent"
	EventBuzzAccepted = "buzz.accepted"
	EventBuzzDeclined = "buzz.declined"
	EventChatMessage  = "chat.message"
)
