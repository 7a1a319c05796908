package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldTable      = "table"
	FieldRows       = "rows"
	FieldDropped    = "dropped"
	FieldView       = "view"
	FieldSeason     = "season"
	FieldPlayer     = "player"
	FieldTeam       = "team"
	FieldMetric     = "metric"
)
