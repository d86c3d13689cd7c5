package conf

import "errors"

var (
	// ErrMissingSpreadsheetID is returned when SPREADSHEET_ID is not configured.
	ErrMissingSpreadsheetID = errors.New("SPREADSHEET_ID is required - please set it in the .env file")
	// ErrMissingServiceAccountFile is returned when SERVICE_ACCOUNT_FILE is not configured.
	ErrMissingServiceAccountFile = errors.New("SERVICE_ACCOUNT_FILE is required - please set it in the .env file")
)
