package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kernel/kit/pkg/avatar"
	"github.com/kernel/kit/pkg/util"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type statusComponent struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	Status    string `json:"status"`
	Code      int    `json:"code,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type statusResponse struct {
	Status     string            `json:"status"`
	Components []statusComponent `json:"components"`
}

type statusTarget struct {
	Name string
	URL  string
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusCmd probes the services kit depends on.
type StatusCmd struct {
	http    HTTPDoer
	targets []statusTarget
}

// StatusInput holds input for the status command.
type StatusInput struct {
	Output string
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check that the services kit talks to are reachable",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	addOutputFlag(statusCmd.Flags())
}

func statusTargets(apiBaseURL string) []statusTarget {
	targets := []statusTarget{
		// Any hash works; d=404 keeps Gravatar from serving a placeholder.
		{Name: "Gravatar", URL: avatar.DefaultGravatarBaseURL + avatar.GravatarHash("") + "?d=404"},
		{Name: "Clearbit Logos", URL: avatar.DefaultLogoBaseURL + "clearbit.com"},
	}
	if apiBaseURL != "" {
		targets = append(targets, statusTarget{Name: "kit API", URL: apiBaseURL})
	}
	return targets
}

func runStatus(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	c := StatusCmd{
		http:    getHTTPClient(cmd),
		targets: statusTargets(getConfig(cmd).APIBaseURL),
	}
	return c.Run(cmd.Context(), StatusInput{Output: output})
}

// Run probes every target and prints the result.
func (c StatusCmd) Run(ctx context.Context, in StatusInput) error {
	if err := validateOutput(in.Output); err != nil {
		return err
	}
	status := c.Check(ctx)

	if in.Output == "json" {
		return util.PrintPrettyJSON(status)
	}
	printStatus(status)
	if status.Status == "full_outage" {
		return fmt.Errorf("no service is reachable")
	}
	return nil
}

// Check probes all targets concurrently. A target that answers at all is
// reachable; 5xx counts as degraded.
func (c StatusCmd) Check(ctx context.Context) statusResponse {
	components := make([]statusComponent, len(c.targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, t := range c.targets {
		g.Go(func() error {
			components[i] = c.probe(ctx, t)
			return nil
		})
	}
	_ = g.Wait()

	return statusResponse{Status: overallStatus(components), Components: components}
}

func (c StatusCmd) probe(ctx context.Context, t statusTarget) statusComponent {
	comp := statusComponent{Name: t.Name, URL: t.URL}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL, nil)
	if err != nil {
		comp.Status = "full_outage"
		comp.Error = err.Error()
		return comp
	}
	resp, err := c.http.Do(req)
	comp.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		comp.Status = "full_outage"
		comp.Error = err.Error()
		return comp
	}
	defer resp.Body.Close()

	comp.Code = resp.StatusCode
	if resp.StatusCode >= 500 {
		comp.Status = "degraded_performance"
	} else {
		comp.Status = "operational"
	}
	return comp
}

func overallStatus(components []statusComponent) string {
	if len(components) == 0 {
		return "unknown"
	}
	down, degraded := 0, 0
	for _, c := range components {
		switch c.Status {
		case "full_outage":
			down++
		case "degraded_performance":
			degraded++
		}
	}
	switch {
	case down == len(components):
		return "full_outage"
	case down > 0:
		return "partial_outage"
	case degraded > 0:
		return "degraded_performance"
	}
	return "operational"
}

var statusDisplay = map[string]struct {
	label string
	rgb   pterm.RGB
}{
	"operational":          {label: "Operational", rgb: pterm.NewRGB(31, 163, 130)},
	"degraded_performance": {label: "Degraded Performance", rgb: pterm.NewRGB(245, 158, 11)},
	"partial_outage":       {label: "Partial Outage", rgb: pterm.NewRGB(242, 85, 51)},
	"full_outage":          {label: "Unreachable", rgb: pterm.NewRGB(239, 68, 68)},
	"unknown":              {label: "Unknown", rgb: pterm.NewRGB(128, 128, 128)},
}

func getStatusDisplay(status string) (string, pterm.RGB) {
	if d, ok := statusDisplay[status]; ok {
		return d.label, d.rgb
	}
	return "Unknown", pterm.NewRGB(128, 128, 128)
}

func coloredDot(rgb pterm.RGB) string {
	return rgb.Sprint("●")
}

func printStatus(resp statusResponse) {
	label, rgb := getStatusDisplay(resp.Status)
	pterm.Println()
	pterm.Println("  " + fmt.Sprintf("Service Status: %s", rgb.Sprint(label)))
	pterm.Println()

	for _, comp := range resp.Components {
		compLabel, compColor := getStatusDisplay(comp.Status)
		detail := fmt.Sprintf("%dms", comp.LatencyMS)
		if comp.Error != "" {
			detail = comp.Error
		}
		pterm.Printf("    %s %-20s %-22s %s\n", coloredDot(compColor), comp.Name, compLabel, pterm.Gray(detail))
	}
	pterm.Println()
}
