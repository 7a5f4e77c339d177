package main

import (
	"context"
	"fmt"
	"log"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/confero/thesischeck"
	"github.com/confero/thesischeck/rules"
	"github.com/confero/thesischeck/server"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	cmd := &cli.Command{
		Name:  "thesischeck",
		Usage: "Validate conference thesis documents (DOCX) against formatting requirements",
		Commands: []*cli.Command{
			checkCmd(),
			serveCmd(logger),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// requirementsFor loads the battery configuration from the --requirements
// flag, defaulting when the flag is absent.
func requirementsFor(cmd *cli.Command) (rules.Requirements, error) {
	path := cmd.String("requirements")
	if path == "" {
		return rules.Default(), nil
	}
	return rules.Load(path)
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate one document and print the report as JSON",
		ArgsUsage: "FILE",
		Description: `Validate a DOCX file and print the validation report to stdout.

The exit code is 0 when the document complies, 1 when it does not, and 2
when the document could not be read at all.

Examples:
  thesischeck check thesis.docx
  thesischeck check --requirements conference.yaml thesis.docx`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "requirements",
				Aliases: []string{"r"},
				Usage:   "Path to a YAML requirements file overlaying the defaults",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return cli.Exit("expected exactly one DOCX file argument", 2)
			}

			req, err := requirementsFor(cmd)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			data, err := os.ReadFile(cmd.Args().First())
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			report, err := thesischeck.New(thesischeck.WithRequirements(req)).Validate(data)
			if err != nil {
				return cli.Exit(fmt.Sprintf("document could not be validated: %v", err), 2)
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}
			fmt.Println(string(out))

			if !report.OK {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func serveCmd(logger *zap.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the validation HTTP server",
		Description: `Serve the validator over HTTP.

Endpoints:
  POST /api/v1/validate  validate the request body, reply with the report
  GET  /health           liveness probe
  GET  /metrics          Prometheus metrics`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Value:   ":8080",
				Usage:   "Listen address",
			},
			&cli.StringFlag{
				Name:    "requirements",
				Aliases: []string{"r"},
				Usage:   "Path to a YAML requirements file overlaying the defaults",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			req, err := requirementsFor(cmd)
			if err != nil {
				return err
			}

			validator := thesischeck.New(thesischeck.WithRequirements(req))
			return server.New(validator, logger).Run(cmd.String("addr"))
		},
	}
}
