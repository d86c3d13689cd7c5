package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/hexa-inventory/stock-sheets/stock"
)

var ReportCmd = Report{
	command: command{
		credentials: "",
		spreadsheet: "",
		debug:       false,
	},

	sheet: "",
	file:  "",
}

type Report struct {
	command
	sheet string
	file  string
}

func (cmd *Report) Name() string {
	return "report"
}

func (cmd *Report) Description() string {
	return "Generates the replenishment report from the stock worksheet and writes it to a CSV file"
}

func (cmd *Report) Usage() string {
	return "--credentials <file> --spreadsheet <id> --sheet <name> --file <file>"
}

func (cmd *Report) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] report [options]\n", APP)
	fmt.Println()
	fmt.Println("  Lists the stock items with an opening balance below the minimum level and exports them to a CSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    stock-sheets report`)
	fmt.Println(`    stock-sheets report --credentials "credentials.json" \`)
	fmt.Println(`                        --spreadsheet "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                        --sheet "STOCK SHEET (Add New Item here)" \`)
	fmt.Println(`                        --file "replenishment_items.csv"`)
	fmt.Println()
}

func (cmd *Report) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("report")

	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Stock worksheet name. Defaults to SHEET_NAME from the .env file")
	flagset.StringVar(&cmd.file, "file", cmd.file, "CSV file name. Defaults to OUTPUT_CSV from the .env file")

	return flagset
}

func (cmd *Report) Execute(args ...any) error {
	options := args[0].(*Options)

	cfg, err := cmd.resolve(options)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.sheet) == "" {
		cmd.sheet = cfg.SheetName
	}

	if strings.TrimSpace(cmd.file) == "" {
		cmd.file = cfg.OutputCSV
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  worksheet:%s", cmd.spreadsheet, cmd.sheet)
	}

	ctx := context.Background()

	google, email, err := newSheetsService(ctx, cmd.credentials)
	if err != nil {
		return err
	}

	return report(ctx, google, email, cmd.spreadsheet, cmd.sheet, cmd.file)
}

// report reads the stock worksheet, filters the items needing replenishment,
// renders the report to stdout and exports it to a CSV file. Shared with the
// 'watch' command.
func report(ctx context.Context, google *sheets.Service, email, spreadsheet, sheet, file string) error {
	document, err := getSpreadsheet(google, spreadsheet, email, ctx)
	if err != nil {
		return err
	}

	worksheet, err := getSheet(document, sheet)
	if err != nil {
		return err
	}

	infof("Reading data from worksheet '%s'", worksheet.Properties.Title)

	response, err := readRange(google, spreadsheet, worksheet.Properties.Title, email, ctx)
	if err != nil {
		return err
	}

	if len(response.Values) == 0 {
		return fmt.Errorf("no data in worksheet '%s'", sheet)
	}

	infof("Read %d rows", len(response.Values))

	rpt, err := stock.MakeReport(response)
	if err != nil {
		return err
	}

	rpt.Render(os.Stdout)

	if len(rpt.Items) == 0 {
		infof("No items need replenishment - skipping CSV export")
		return nil
	}

	tmp, err := os.CreateTemp(os.TempDir(), "replenishment")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := rpt.WriteCSV(tmp); err != nil {
		return fmt.Errorf("error creating CSV file (%v)", err)
	}

	tmp.Close()

	if dir := filepath.Dir(file); dir != "." {
		if err := os.MkdirAll(dir, 0770); err != nil {
			return err
		}
	}

	if err := os.Rename(tmp.Name(), file); err != nil {
		return err
	}

	infof("Saved %d replenishment items to %s", len(rpt.Items), file)

	return nil
}
