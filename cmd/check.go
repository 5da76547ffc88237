package cmd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apidrift/cli/internal/config"
	"github.com/apidrift/cli/internal/logger"
	"github.com/apidrift/cli/internal/routes"
	"github.com/apidrift/cli/internal/scanner"
	"github.com/apidrift/cli/internal/ui"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-reference declared API routes against UI artifacts",
	Long: `Check parses the route-registration file, scans the configured UI
trees for textual references to each route, and reports endpoints that no
scanned file mentions.

Example usage:
  apidrift                      # Check the current directory
  apidrift check --root ~/repo  # Check another repository
  apidrift check --output json  # Machine-readable report`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	outputFormat, _ := cmd.Flags().GetString("output")
	rootPath, _ := cmd.Flags().GetString("root")
	configPath, _ := cmd.Flags().GetString("config")

	log := logger.NewDefault()
	if verbose {
		log = log.SetLevel(logger.DebugLevel)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return fmt.Errorf("failed to resolve root: %w", err)
	}

	endpoints, err := routes.ParseFile(filepath.Join(absRoot, cfg.RoutesFile), cfg.MountPrefix)
	if err != nil {
		return err
	}
	if len(endpoints) == 0 {
		if outputFormat == "json" {
			return outputJSON(cmd, endpoints, &scanner.Result{})
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.NoEndpointsMessage+"\n")
		return nil
	}
	log.Debugf("parsed %d endpoint(s) from %s", len(endpoints), cfg.RoutesFile)

	sc, err := scanner.New(absRoot, cfg, log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var result *scanner.Result
	scan := func() error {
		var e error
		result, e = sc.Scan(ctx, endpoints)
		return e
	}

	// Spinner only on a terminal; piped output stays byte-stable.
	if ui.IsInteractive() {
		err = ui.RunSpinner(ctx, "Scanning UI artifacts...", scan)
	} else {
		err = scan()
	}
	if err != nil {
		return err
	}
	log.Debugf("scanned %d file(s), skipped %d", result.FilesScanned, result.FilesSkipped)

	switch outputFormat {
	case "json":
		return outputJSON(cmd, endpoints, result)
	default:
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderReport(endpoints, cfg.UIDirs))
		return nil
	}
}

func outputJSON(cmd *cobra.Command, endpoints []*routes.Endpoint, result *scanner.Result) error {
	if endpoints == nil {
		endpoints = []*routes.Endpoint{}
	}
	used := 0
	for _, ep := range endpoints {
		if ep.Used {
			used++
		}
	}

	out := map[string]interface{}{
		"endpoints": endpoints,
		"summary": map[string]interface{}{
			"total":         len(endpoints),
			"used":          used,
			"unused":        len(endpoints) - used,
			"files_scanned": result.FilesScanned,
			"files_skipped": result.FilesSkipped,
		},
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
