package constants

// Storage providers
const (
	StorageProviderMemory   = "memory"
	StorageProviderRedis    = "redis"
	StorageProviderPostgres = "postgres"
)

// Messaging providers
const (
	MessagingProviderStatic   = "static"
	MessagingProviderFirebase = "firebase"
)

// Event sink providers
const (
	SinkProviderHTTP   = "http"
	SinkProviderGoogle = "google"
	SinkProviderNats   = "nats"
)
