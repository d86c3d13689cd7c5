package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
)

var VerifyCmd = Verify{
	command: command{
		credentials: "",
		spreadsheet: "",
		debug:       false,
	},

	rows: 10,
}

type Verify struct {
	command
	rows int
}

func (cmd *Verify) Name() string {
	return "verify"
}

func (cmd *Verify) Description() string {
	return "Verifies service account access to the configured spreadsheet"
}

func (cmd *Verify) Usage() string {
	return "--credentials <file> --spreadsheet <id>"
}

func (cmd *Verify) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] verify [options]\n", APP)
	fmt.Println()
	fmt.Println("  Fetches the spreadsheet metadata and previews the first worksheet to verify the service account access")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    stock-sheets verify`)
	fmt.Println(`    stock-sheets verify --credentials "credentials.json" --spreadsheet "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println()
}

func (cmd *Verify) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("verify")

	flagset.IntVar(&cmd.rows, "rows", cmd.rows, "Maximum number of rows to display from the first worksheet")

	return flagset
}

func (cmd *Verify) Execute(args ...any) error {
	options := args[0].(*Options)

	if _, err := cmd.resolve(options); err != nil {
		return err
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s", cmd.spreadsheet)
	}

	ctx := context.Background()

	google, email, err := newSheetsService(ctx, cmd.credentials)
	if err != nil {
		return err
	}

	infof("Accessing spreadsheet %s", cmd.spreadsheet)

	spreadsheet, err := getSpreadsheet(google, cmd.spreadsheet, email, ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Title:      %s\n", spreadsheet.Properties.Title)
	fmt.Printf("  Worksheets: %d\n", len(spreadsheet.Sheets))

	for _, sheet := range spreadsheet.Sheets {
		fmt.Printf("    - %s\n", sheet.Properties.Title)
	}

	fmt.Println()

	if len(spreadsheet.Sheets) > 0 {
		first := spreadsheet.Sheets[0].Properties.Title

		response, err := readRange(google, cmd.spreadsheet, first, email, ctx)
		if err != nil {
			return err
		}

		preview(os.Stdout, response.Values, cmd.rows)
	}

	infof("Verified access to spreadsheet %s", cmd.spreadsheet)

	return nil
}

// preview displays the first rows of a worksheet. The row count is clamped to
// [0, len(values)].
func preview(f io.Writer, values [][]any, rows int) {
	N := max(0, min(rows, len(values)))

	for i, row := range values[:N] {
		fmt.Fprintf(f, "  row %-4v %v\n", i+1, row)
	}

	if len(values) > N {
		fmt.Fprintf(f, "  ... (%d more rows not shown)\n", len(values)-N)
	}

	fmt.Fprintln(f)
	fmt.Fprintf(f, "  Total rows: %d\n", len(values))
	fmt.Fprintln(f)
}
