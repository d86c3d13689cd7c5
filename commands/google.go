package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets.readonly"

// authorize loads the service account credentials file and returns an HTTP
// client authorised for the requested scope, along with the service account
// email (used in the 'permission denied' remediation message).
func authorize(credentials string, scope string) (*http.Client, string, error) {
	b, err := os.ReadFile(credentials)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", fmt.Errorf("service account file not found: %s", credentials)
	} else if err != nil {
		return nil, "", err
	}

	config, err := google.JWTConfigFromJSON(b, scope)
	if err != nil {
		return nil, "", fmt.Errorf("invalid service account file %s (%v)", credentials, err)
	}

	return config.Client(context.Background()), config.Email, nil
}

func newSheetsService(ctx context.Context, credentials string) (*sheets.Service, string, error) {
	client, email, err := authorize(credentials, SHEETS)
	if err != nil {
		return nil, "", fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, "", fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return google, email, nil
}

func getSpreadsheet(google *sheets.Service, id string, email string, ctx context.Context) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Context(ctx).Do()
	if err != nil {
		return nil, apiError(err, fmt.Sprintf("spreadsheet %s", id), email)
	}

	return spreadsheet, nil
}

func getSheet(spreadsheet *sheets.Spreadsheet, name string) (*sheets.Sheet, error) {
	for _, sheet := range spreadsheet.Sheets {
		if strings.EqualFold(strings.TrimSpace(sheet.Properties.Title), strings.TrimSpace(name)) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet '%s'", name)
}

func readRange(google *sheets.Service, id string, area string, email string, ctx context.Context) (*sheets.ValueRange, error) {
	response, err := google.Spreadsheets.Values.Get(id, area).Context(ctx).Do()
	if err != nil {
		return nil, apiError(err, fmt.Sprintf("range '%s'", area), email)
	}

	return response, nil
}

// apiError maps the Sheets API errors with a known remediation to actionable
// messages.
func apiError(err error, subject string, email string) error {
	var gerr *googleapi.Error

	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%s not found (%v)", subject, err)

		case http.StatusForbidden:
			return fmt.Errorf("permission denied for %s - share the spreadsheet with %s (%v)", subject, email, err)
		}
	}

	return fmt.Errorf("unable to retrieve %s (%v)", subject, err)
}
