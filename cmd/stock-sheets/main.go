package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hexa-inventory/stock-sheets/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.VerifyCmd,
	&commands.ReportCmd,
	&commands.GetCmd,
	&commands.WatchCmd,
}

var options = commands.Options{
	EnvFile: "",
	Debug:   false,
}

func main() {
	flag.StringVar(&options.EnvFile, "env", options.EnvFile, "Alternative .env file (defaults to .env in the working directory)")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 && args[0] == "help" {
		help(args[1:])
		return
	}

	cmd, err := commands.Parse(cli, args)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		usage()
		os.Exit(1)
	}

	if cmd == nil {
		usage()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func help(args []string) {
	if len(args) > 0 {
		for _, c := range cli {
			if c.Name() == args[0] {
				c.Help()
				return
			}
		}

		fmt.Printf("\nInvalid command '%s'\n", args[0])
	}

	usage()
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--env <file>] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")

	for _, c := range cli {
		fmt.Printf("    %-9s %s\n", c.Name(), c.Description())
	}

	fmt.Println()
	fmt.Printf("  Use '%s help <command>' for the command specific options\n", commands.APP)
	fmt.Println()
}
