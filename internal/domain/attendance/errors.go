package attendance

import "errors"

// Attendance domain errors
var (
	ErrImportNotSupported = errors.New("attendance import requires the postgres data source")
	ErrEmptyImport        = errors.New("import file contains no attendance rows")
)
