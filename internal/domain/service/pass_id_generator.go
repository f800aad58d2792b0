package service

// PassIDGenerator mints pass identifiers.
type PassIDGenerator interface {
	// Generate returns a new identifier. An error means the entropy source failed;
	// callers must abort instead of falling back to a weaker generator.
	Generate() (string, error)
}
