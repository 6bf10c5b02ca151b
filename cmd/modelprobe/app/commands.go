package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/modelprobe/internal/credential"
	"github.com/agentstation/modelprobe/internal/output"
	"github.com/agentstation/modelprobe/internal/probe"
)

// Status symbols for summary output.
const (
	symbolSuccess = "✓"
	symbolError   = "✗"
)

// checkResult summarizes the outcome of probing one endpoint.
type checkResult struct {
	Endpoint     string `json:"endpoint" yaml:"endpoint"`
	URL          string `json:"url" yaml:"url"`
	Status       string `json:"status" yaml:"status"`
	ResponseTime string `json:"response_time" yaml:"response_time"`
	ModelsFound  string `json:"models_found" yaml:"models_found"`
	Error        string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewCheckCommand creates the check command, the default probe run.
func (a *App) NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the API key and list models on each configured surface",
		Long: `Check reads the API key from the environment, then probes the
list-models operation of each configured API surface sequentially.

A failed probe is reported and the run continues with the next surface;
only a missing API key aborts the run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd)
		},
	}

	addProbeFlags(cmd, a.config)

	return cmd
}

// runCheck executes the probe run shared by the root and check commands.
func (a *App) runCheck(cmd *cobra.Command) error {
	reporter := probe.NewReporter(os.Stdout)

	// The credential is loaded exactly once; without it no endpoint can
	// be probed, so this is the one fatal failure.
	cred, err := credential.FromEnv(a.config.CredentialEnv)
	if err != nil {
		reporter.MissingKey(a.config.CredentialEnv)
		return err
	}

	reporter.KeyFound(cred)

	a.logger.Debug().
		Str("env", cred.EnvVar()).
		Str("key", cred.Redacted()).
		Dur("timeout", a.config.Timeout).
		Msg("credential loaded")

	prober := probe.New(cred, probe.WithTimeout(a.config.Timeout))
	endpoints := a.config.Endpoints()
	results := make([]checkResult, 0, len(endpoints))

	// Strictly sequential: each probe completes before the next begins,
	// and a failure never aborts the run.
	for i, endpoint := range endpoints {
		if i > 0 {
			reporter.Blank()
		}
		reporter.Testing(endpoint)

		start := time.Now()
		result := prober.Probe(cmd.Context(), endpoint)
		elapsed := time.Since(start).Truncate(time.Millisecond)

		reporter.Report(endpoint, result)
		results = append(results, summarize(endpoint, result, elapsed))
	}

	return a.renderSummary(results)
}

// summarize converts a probe outcome into a summary row.
func summarize(endpoint probe.Endpoint, result probe.Result, elapsed time.Duration) checkResult {
	summary := checkResult{
		Endpoint:     endpoint.Name(),
		URL:          endpoint.ModelsURL(),
		ResponseTime: elapsed.String(),
		ModelsFound:  "-",
	}

	if result.OK() {
		summary.Status = symbolSuccess + " Success"
		summary.ModelsFound = fmt.Sprintf("%d", len(result.Records()))
	} else {
		summary.Status = symbolError + " Failed"
		summary.Error = result.ErrorMessage()
	}

	return summary
}

// renderSummary prints the structured summary when a non-text format was
// requested. The plain text output above is the default and only output
// otherwise.
func (a *App) renderSummary(results []checkResult) error {
	format, err := output.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}
	if format == "" || format == output.FormatText {
		return nil
	}

	fmt.Println()
	if format == output.FormatTable {
		return output.NewFormatter(format).Format(os.Stdout, checkResultsTable(results))
	}
	return output.NewFormatter(format).Format(os.Stdout, results)
}

// checkResultsTable shapes summary rows for the table formatter.
func checkResultsTable(results []checkResult) output.Data {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		errorMsg := result.Error
		if errorMsg == "" {
			errorMsg = "-"
		}
		rows = append(rows, []string{
			result.Endpoint,
			result.Status,
			result.ResponseTime,
			result.ModelsFound,
			errorMsg,
		})
	}

	return output.Data{
		Headers: []string{"Endpoint", "Status", "Response Time", "Models", "Error"},
		Rows:    rows,
	}
}

// endpointStatus describes one configured endpoint without probing it.
type endpointStatus struct {
	Endpoint   string `json:"endpoint" yaml:"endpoint"`
	URL        string `json:"url" yaml:"url"`
	Credential string `json:"credential" yaml:"credential"`
}

// NewEndpointsCommand creates the endpoints command, which shows the
// configured surfaces and local credential state without network calls.
func (a *App) NewEndpointsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "Show configured API surfaces and credential status",
		RunE: func(_ *cobra.Command, _ []string) error {
			status := credential.Check(a.config.CredentialEnv)

			endpoints := a.config.Endpoints()
			statuses := make([]endpointStatus, 0, len(endpoints))
			for _, endpoint := range endpoints {
				statuses = append(statuses, endpointStatus{
					Endpoint:   endpoint.Name(),
					URL:        endpoint.ModelsURL(),
					Credential: status.Summary,
				})
			}

			format := output.DetectFormat(a.config.Format)
			if format == output.FormatText || format == output.FormatTable {
				rows := make([][]string, 0, len(statuses))
				for _, s := range statuses {
					rows = append(rows, []string{s.Endpoint, s.URL, s.Credential})
				}
				return output.NewFormatter(output.FormatTable).Format(os.Stdout, output.Data{
					Headers: []string{"Endpoint", "URL", "Credential"},
					Rows:    rows,
				})
			}
			return output.NewFormatter(format).Format(os.Stdout, statuses)
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("modelprobe %s\n", a.version)
			if a.commit != "unknown" {
				fmt.Printf("  commit: %s\n", a.commit)
			}
			if a.date != "unknown" {
				fmt.Printf("  built:  %s\n", a.date)
			}
		},
	}
}
