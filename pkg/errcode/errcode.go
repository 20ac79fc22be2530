package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Record errors
	RecordLengthError
	RecordMissingKeyError

	// Collection errors
	FieldNotFoundError
	FieldTypeError

	// Rating errors
	UnscorableProductError
	UnknownSubAreaError

	// Policy errors
	PolicyReadError
	PolicyParseError
	PolicyExclusionError
	PolicyOverrideError
	PolicyRowError

	// Source errors
	SourceNotFoundError
	SourceOpenError
	SourceQueryError
	SourceScanError
	SourceEmptyError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBTableCheckError
	DBQueryTablesError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Ranking errors
	PersonNotFoundError

	// Export errors
	ExportRunError
	ExportPersonsError
	ExportProductsError
)
