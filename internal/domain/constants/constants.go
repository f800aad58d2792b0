// Package constants holds configuration enumerations shared across layers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
)

// Pass record store drivers.
const (
	StoreDriverPostgres  = "postgres"
	StoreDriverFirestore = "firestore"
	StoreDriverMemory    = "memory"
)

// Event publisher providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderAMQP   = "amqp"
)

// Logo normalization failure policies.
const (
	LogoPolicySkip = "skip"
	LogoPolicyFail = "fail"
)

// Wallet artifact metadata.
const (
	PassContentType = "application/vnd.apple.pkpass"
	PassFilename    = "pass.pkpass"
)
