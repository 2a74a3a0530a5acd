// shvalidate checks Smart Home Skill API v2 responses against the requests
// they answer.
package main

import (
	"fmt"
	"os"

	"github.com/connectedhome/validation-go/cmd/shvalidate/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

var version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "validate":
		exitCode = commands.RunValidate(args, os.Stdout, os.Stderr)
	case "schema":
		exitCode = commands.RunSchema(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Printf("shvalidate version %s\n", version)
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`shvalidate - Smart Home Skill API v2 response validator

Usage:
  shvalidate <command> [options] [files...]

Commands:
  validate   Validate request/response pair documents
  schema     Print the envelope JSON Schema

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Environment:
  SHVALIDATE_CONFIG      YAML config file
  SHVALIDATE_WORKERS     Documents validated at once (default 4)
  SHVALIDATE_SCHEMA      Also check the envelope JSON Schema
  SHVALIDATE_OUTPUT      Report format, text or json
  SHVALIDATE_LOG_LEVEL   Log level (default warn)
  SHVALIDATE_LOG_FORMAT  Log format, text or json

Examples:
  shvalidate validate testdata/*.json
  shvalidate validate --json --workers 8 pairs/*.yaml
  shvalidate validate --request request.json --response response.json

For command-specific help, run:
  shvalidate <command> --help`)
}
