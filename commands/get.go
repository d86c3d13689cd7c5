package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var GetCmd = Get{
	command: command{
		credentials: "",
		spreadsheet: "",
		debug:       false,
	},

	area: "",
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	area string
	file string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Downloads a Google Sheets worksheet range and stores it to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "--credentials <file> --spreadsheet <id> --range <range> --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] get [options] --range <range> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads a Google Sheets worksheet range to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    stock-sheets get --credentials "credentials.json" \`)
	fmt.Println(`                     --spreadsheet "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                     --range "STOCK SHEET (Add New Item here)!A1:N" \`)
	fmt.Println(`                     --file "stock.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'STOCK SHEET (Add New Item here)!A1:N'")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	if _, err := cmd.resolve(options); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return fmt.Errorf("--range is a required option")
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  range:%s", cmd.spreadsheet, cmd.area)
	}

	ctx := context.Background()

	google, email, err := newSheetsService(ctx, cmd.credentials)
	if err != nil {
		return err
	}

	response, err := readRange(google, cmd.spreadsheet, cmd.area, email, ctx)
	if err != nil {
		return err
	}

	if len(response.Values) == 0 {
		return fmt.Errorf("no data in spreadsheet/range")
	}

	tmp, err := os.CreateTemp(os.TempDir(), "sheet")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := sheetToTSV(tmp, response); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	if dir := filepath.Dir(cmd.file); dir != "." {
		if err := os.MkdirAll(dir, 0770); err != nil {
			return err
		}
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved range '%s' to file %s", cmd.area, cmd.file)

	return nil
}
