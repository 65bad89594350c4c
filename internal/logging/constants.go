package logging

// Field names shared by all log statements so entries can be filtered
// consistently regardless of which component wrote them.
const (
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldOperation  = "operation"
	FieldScope      = "scope"
	FieldMerchant   = "merchant"
	FieldCategory   = "category"
	FieldIntent     = "intent"
	FieldConfidence = "confidence"
	FieldProvider   = "provider"
	FieldCount      = "count"
	FieldDuration   = "duration_ms"
)
