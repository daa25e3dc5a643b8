package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/s3reach/internal/input"
	"github.com/ppiankov/s3reach/internal/probe"
	"github.com/ppiankov/s3reach/internal/report"
	"github.com/ppiankov/s3reach/internal/s3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultRegion = "us-east-1"

var checkFlags struct {
	awsProfile   string
	awsRegion    string
	workers      int
	outputFormat string
	outputFile   string
	noProgress   bool
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check S3 access for domains listed in a file",
	Long: `Reads S3 domains or URLs from a text file (one per line, # for comments),
converts each to a canonical s3:// address, and checks reachability under
the current AWS credentials. Buckets are checked with GetBucketLocation and
objects with HeadObject, so no object data is ever transferred.

Unreachable entries are reported per row and never fail the run; the exit
status is non-zero only for setup failures such as a missing input file or
missing credentials.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFlags.awsProfile, "aws-profile", "", "AWS profile to use")
	checkCmd.Flags().StringVar(&checkFlags.awsRegion, "region", defaultRegion, "AWS region")
	checkCmd.Flags().IntVar(&checkFlags.workers, "workers", 5, "Number of concurrent workers")
	checkCmd.Flags().StringVarP(&checkFlags.outputFormat, "format", "f", "text", "Output format: text, json, or csv")
	checkCmd.Flags().StringVarP(&checkFlags.outputFile, "output", "o", "", "Also export results to a CSV file")
	checkCmd.Flags().BoolVar(&checkFlags.noProgress, "no-progress", false, "Disable progress indicators")
}

func runCheck(cmd *cobra.Command, args []string) error {
	// Apply config file defaults for flags not explicitly set
	applyConfigToCheckFlags(cmd)

	ctx := context.Background()

	// Check if we're running in a terminal (for progress indicators)
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	showProgress := isTTY && !checkFlags.noProgress

	// 1. Load domains from the input file
	inputPath := args[0]
	printStatus("Loading S3 domains from: %s", inputPath)
	records, err := input.LoadFile(inputPath)
	if err != nil {
		return enhanceError("input loading", err, checkFlags.workers)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "No domains found in file.")
		return nil
	}
	printStatus("Found %d domains to check", len(records))
	logConversions(records)

	// 2. Initialize S3 client
	printStatus("Initializing AWS S3 client...")
	client, err := s3.NewClient(ctx, checkFlags.awsProfile, checkFlags.awsRegion)
	if err != nil {
		return enhanceError("S3 client initialization", err, checkFlags.workers)
	}

	// 3. Probe all addresses with the worker pool
	printStatus("Checking S3 access using %d workers...", checkFlags.workers)
	rows, summary := runChecks(ctx, client, records, checkFlags.workers, showProgress)
	if showProgress {
		fmt.Fprintf(os.Stderr, "\n")
	}

	// 4. Generate report
	data := report.Data{
		Tool:      "s3reach",
		Version:   GetVersion(),
		Timestamp: time.Now(),
		Config: report.Config{
			InputPath:  inputPath,
			AWSProfile: checkFlags.awsProfile,
			AWSRegion:  client.GetRegion(),
			Workers:    checkFlags.workers,
		},
		Summary: summary,
		Rows:    rows,
	}

	reporter, err := selectReporter(checkFlags.outputFormat, os.Stdout)
	if err != nil {
		return err
	}
	if err := reporter.Generate(data); err != nil {
		return enhanceError("report generation", err, checkFlags.workers)
	}

	// 5. Optional CSV export
	if checkFlags.outputFile != "" {
		f, err := os.Create(checkFlags.outputFile)
		if err != nil {
			return enhanceError("output file creation", err, checkFlags.workers)
		}
		defer func() { _ = f.Close() }()

		if err := report.NewCSVReporter(f).Generate(data); err != nil {
			return enhanceError("CSV export", err, checkFlags.workers)
		}
		printStatus("Results saved to: %s", checkFlags.outputFile)
	}

	return nil
}

// runChecks probes every valid record and joins the outcomes back to the
// input lines. Malformed records skip probing and surface as invalid rows.
func runChecks(ctx context.Context, client probe.StorageClient, records []input.Record, workers int, showProgress bool) ([]report.Row, report.Summary) {
	var tasks []probe.Task
	for i, rec := range records {
		if rec.Err != nil {
			continue
		}
		tasks = append(tasks, probe.Task{ID: i, Address: rec.Address})
	}

	runner := probe.NewRunner(client, workers)
	if showProgress {
		runner.SetProgressCallback(func(current, total int, message string) {
			fmt.Fprintf(os.Stderr, "\r[%d/%d] %s", current, total, message)
		})
	}

	results := runner.Run(ctx, tasks)
	return report.Aggregate(records, results)
}

// logConversions shows how the first few input lines were normalized.
func logConversions(records []input.Record) {
	const maxShown = 10
	printStatus("Domain conversions:")
	for i, rec := range records {
		if i >= maxShown {
			printStatus("  ... and %d more", len(records)-maxShown)
			break
		}
		if rec.Err != nil {
			printStatus("  %s -> invalid: %v", rec.Raw, rec.Err)
			continue
		}
		printStatus("  %s -> %s", rec.Raw, rec.Address.URL())
	}
}

func applyConfigToCheckFlags(cmd *cobra.Command) {
	if !cmd.Flags().Lookup("region").Changed && cfg.Region != "" {
		checkFlags.awsRegion = cfg.Region
	}
	if !cmd.Flags().Lookup("aws-profile").Changed && cfg.Profile != "" {
		checkFlags.awsProfile = cfg.Profile
	}
	if !cmd.Flags().Lookup("workers").Changed && cfg.Workers > 0 {
		checkFlags.workers = cfg.Workers
	}
	if !cmd.Flags().Lookup("format").Changed && cfg.Format != "" {
		checkFlags.outputFormat = cfg.Format
	}
	if !cmd.Flags().Lookup("output").Changed && cfg.Output != "" {
		checkFlags.outputFile = cfg.Output
	}
}
