package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/qbox/qadocgen/internal/assemble"
	"github.com/qbox/qadocgen/internal/coverage"
	"github.com/qbox/qadocgen/internal/render"
	"github.com/qbox/qadocgen/internal/staging"
	"github.com/qbox/qadocgen/internal/trace"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// generateFlags holds the parsed flags for the generate command.
type generateFlags struct {
	out     string
	session string
}

func main() {
	root := &cobra.Command{
		Use:     "qadocgen",
		Short:   "Generate QA documentation from free-text requirements",
		Long:    "qadocgen turns a requirement description into a test plan, a test case table and exploratory testing charters.",
		Version: version,
	}

	var flags generateFlags
	generateCmd := &cobra.Command{
		Use:   "generate <requirement-file>",
		Short: "Generate the three QA documents for a requirement",
		Long:  "Reads the requirement from the given file, or from stdin when the argument is \"-\", and writes the generated documents to the output directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], flags)
		},
	}

	f := generateCmd.Flags()
	f.StringVar(&flags.out, "out", ".", "Directory to write the generated documents to")
	f.StringVar(&flags.session, "session", "", "Session identifier; defaults to a timestamp")

	root.AddCommand(generateCmd)

	if err := root.Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, requirementPath string, flags generateFlags) error {
	requirement, err := readRequirement(requirementPath)
	if err != nil {
		return err
	}

	sessionID := flags.session
	if sessionID == "" {
		sessionID = "cli-" + time.Now().Format("20060102150405")
	}

	ctx := trace.NewContext(cmd.Context(), trace.NewTraceID(trace.GeneratePrefix))

	assembler := assemble.New(coverage.Catalog(), coverage.CharterCatalog())
	set := assembler.Assemble(ctx, requirement, sessionID)

	out, err := render.Serialize(set)
	if err != nil {
		return fmt.Errorf("failed to serialize documents: %w", err)
	}

	mgr, err := staging.NewManager(flags.out, 0)
	if err != nil {
		return err
	}
	staged, err := mgr.Stage(ctx, sessionID, out, set.GeneratedAt)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Feature: %s\n", set.FeatureName)
	fmt.Fprintf(cmd.OutOrStdout(), "Test cases: %d\n", len(set.TestCases))
	fmt.Fprintf(cmd.OutOrStdout(), "Exploratory charters: %d\n", len(set.Charters))
	fmt.Fprintf(cmd.OutOrStdout(), "Test plan:            %s\n", staged.TestPlan.Path)
	fmt.Fprintf(cmd.OutOrStdout(), "Test cases (CSV):     %s\n", staged.TestCases.Path)
	fmt.Fprintf(cmd.OutOrStdout(), "Exploratory charters: %s\n", staged.Charters.Path)
	return nil
}

// readRequirement reads the requirement text from a file, or from stdin
// when path is "-".
func readRequirement(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read requirement from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read requirement file: %w", err)
	}
	return string(data), nil
}
