package config

const (
	// DefaultMatchLimit is used when a match query does not pass a positive limit.
	DefaultMatchLimit = 10

	// MaxMatchLimit caps the limit query parameter on match routes.
	MaxMatchLimit = 50

	// MaxInterestsLength bounds the raw comma-separated interests text.
	MaxInterestsLength = 500

	// MaxInterestTokens is the most distinct interests a profile may list.
	MaxInterestTokens = 30

	// MaxInterestTokenLength bounds a single interest after trimming.
	MaxInterestTokenLength = 50

	// MaxNotesLength bounds the free-text notes field.
	MaxNotesLength = 2000
)
