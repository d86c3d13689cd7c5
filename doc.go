// Copyright 2026 hexa-inventory. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package stock-sheets generates stock replenishment reports from an inventory worksheet stored as a Google Sheet.

stock-sheets can be used from the command line but is really intended to be run from a cron job (or with the
built-in 'watch' command) to keep a replenishment CSV up to date with the items whose opening balance has
dropped below their minimum stock level.

stock-sheets supports the following commands:

  - verify, to verify service account access to the configured spreadsheet
  - report, to identify the items needing replenishment and write them to a CSV file
  - get, to download a Google Sheets worksheet range as a TSV file
  - watch, to run the replenishment report on a cron schedule
  - version, to display the application version
*/
package sheets
