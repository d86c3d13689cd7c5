package commands

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/hexa-inventory/stock-sheets/conf"
)

const APP = "stock-sheets"
const VERSION = "v0.1.0"

// Options are the global command line options, shared by all the commands.
type Options struct {
	EnvFile string
	Debug   bool
}

// Command is the interface implemented by the stock-sheets subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

// Parse matches the first command line argument (after the global options)
// against the command list and parses the remaining arguments with the
// command's own flagset.
func Parse(cli []Command, args []string) (Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	for _, c := range cli {
		if c.Name() == args[0] {
			flagset := c.FlagSet()
			if flagset == nil {
				panic(fmt.Sprintf("command '%s' has no flagset", c.Name()))
			}

			return c, flagset.Parse(args[1:])
		}
	}

	return nil, fmt.Errorf("invalid command '%s'", args[0])
}

// command holds the options common to all the commands that access the
// Google Sheets API.
type command struct {
	credentials string
	spreadsheet string
	debug       bool
}

func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the service account credentials JSON file. Defaults to SERVICE_ACCOUNT_FILE from the .env file")
	flagset.StringVar(&c.spreadsheet, "spreadsheet", c.spreadsheet, "Spreadsheet ID or 'https://docs.google.com/spreadsheets/d/...' URL. Defaults to SPREADSHEET_ID from the .env file")

	return flagset
}

// resolve merges the .env/environment configuration into the unset command
// options (command line options take precedence) and validates the result.
func (c *command) resolve(options *Options) (*conf.Config, error) {
	c.debug = options.Debug

	cfg, err := conf.Load(options.EnvFile)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(c.credentials); v != "" {
		cfg.ServiceAccountFile = v
	}

	if v := strings.TrimSpace(c.spreadsheet); v != "" {
		cfg.SpreadsheetID = v
	}

	// ... the platform default only applies if the credentials file is actually
	//     there - a missing SERVICE_ACCOUNT_FILE is a configuration error
	if strings.TrimSpace(cfg.ServiceAccountFile) == "" {
		if _, err := os.Stat(DEFAULT_CREDENTIALS); err == nil {
			cfg.ServiceAccountFile = DEFAULT_CREDENTIALS
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	id, err := spreadsheetID(cfg.SpreadsheetID)
	if err != nil {
		return nil, err
	}

	cfg.SpreadsheetID = id

	c.credentials = cfg.ServiceAccountFile
	c.spreadsheet = cfg.SpreadsheetID

	return cfg, nil
}

// spreadsheetID extracts the spreadsheet ID from a docs.google.com URL,
// accepting an already extracted ID as-is.
func spreadsheetID(v string) (string, error) {
	if match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(v); len(match) >= 2 {
		return match[1], nil
	}

	if regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(v) {
		return v, nil
	}

	return "", fmt.Errorf("invalid spreadsheet '%s' - expected a spreadsheet ID or something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'", v)
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
