package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/robfig/cron/v3"
)

var WatchCmd = Watch{
	command: command{
		credentials: "",
		spreadsheet: "",
		debug:       false,
	},

	sheet:    "",
	file:     "",
	schedule: "",
}

type Watch struct {
	command
	sheet    string
	file     string
	schedule string
}

func (cmd *Watch) Name() string {
	return "watch"
}

func (cmd *Watch) Description() string {
	return "Runs the replenishment report on a cron schedule until interrupted"
}

func (cmd *Watch) Usage() string {
	return "--credentials <file> --spreadsheet <id> --schedule <cron>"
}

func (cmd *Watch) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] watch [options]\n", APP)
	fmt.Println()
	fmt.Println("  Generates the replenishment report immediately and then on a cron schedule, until interrupted with CTRL-C")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    stock-sheets watch`)
	fmt.Println(`    stock-sheets watch --schedule "0 6 * * *" --file "replenishment_items.csv"`)
	fmt.Println()
}

func (cmd *Watch) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("watch")

	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Stock worksheet name. Defaults to SHEET_NAME from the .env file")
	flagset.StringVar(&cmd.file, "file", cmd.file, "CSV file name. Defaults to OUTPUT_CSV from the .env file")
	flagset.StringVar(&cmd.schedule, "schedule", cmd.schedule, "Cron schedule e.g. '0 6 * * *'. Defaults to WATCH_SCHEDULE from the .env file")

	return flagset
}

func (cmd *Watch) Execute(args ...any) error {
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

	if strings.TrimSpace(cmd.schedule) == "" {
		cmd.schedule = cfg.WatchSchedule
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  worksheet:%s  schedule:%s", cmd.spreadsheet, cmd.sheet, cmd.schedule)
	}

	ctx := context.Background()

	google, email, err := newSheetsService(ctx, cmd.credentials)
	if err != nil {
		return err
	}

	run := func() {
		if err := report(ctx, google, email, cmd.spreadsheet, cmd.sheet, cmd.file); err != nil {
			warnf("%v", err)
		}
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cmd.schedule, run); err != nil {
		return fmt.Errorf("invalid schedule '%s' (%v)", cmd.schedule, err)
	}

	run()

	scheduler.Start()

	infof("Watching spreadsheet %s (schedule '%s')", cmd.spreadsheet, cmd.schedule)

	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	<-interrupt

	// ... let an in-flight report finish before exiting
	<-scheduler.Stop().Done()

	infof("Stopped")

	return nil
}
