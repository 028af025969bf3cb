package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"

	// Document fields.
	FieldLines    = "lines"
	FieldEncoding = "encoding"
	FieldLanguage = "language"

	// Viewer fields.
	FieldAction  = "action"
	FieldMode    = "mode"
	FieldTopLine = "top_line"
	FieldPattern = "pattern"
	FieldWidth   = "width"
	FieldHeight  = "height"

	// Configuration fields.
	FieldConfigFile = "config_file"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
