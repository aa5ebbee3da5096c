// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider selection values for config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ActivationCodeLength is the fixed length of issued activation codes.
const ActivationCodeLength = 16

// DefaultActivationRetryLimit bounds collision retries when minting an
// activation code; exceeding it means the code space is near exhaustion.
const DefaultActivationRetryLimit = 5
