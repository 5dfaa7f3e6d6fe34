package ir

// Version constants for persisted search records and the generator.
const (
	// RecordVersion is the schema version of stored search records.
	RecordVersion = "1"

	// EngineVersion is the gravsearch generator version.
	EngineVersion = "0.1.0"
)
