package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrOutcome = "outcome"
)

// Format outcomes recorded per formatting call.
const (
	OutcomeOK             = "ok"
	OutcomeEmpty          = "empty"
	OutcomeInvalidDate    = "invalid_date"
	OutcomeInvalidPattern = "invalid_pattern"
)
