package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/clicycle/pkg/clicycle"
)

const demoSnippet = `func main() {
	cli, _ := clicycle.New()
	cli.Header("My App", "Version 1.0")
	cli.Success("Operation completed!")
}`

func newDemoCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render every component kind in sequence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := newCLI(cmd, flags)
			if err != nil {
				return err
			}
			defer cli.Close() //nolint:errcheck

			return runDemo(cli)
		},
	}

	return cmd
}

// runDemo walks through each component kind once; the blank lines
// between them all come from the spacing rule table.
func runDemo(cli *clicycle.Clicycle) error {
	if err := cli.Header("Clicycle", "component showcase"); err != nil {
		return err
	}

	if err := cli.Section("Status lines"); err != nil {
		return err
	}
	if err := cli.Info("Connecting to service"); err != nil {
		return err
	}
	if err := cli.Success("Connection established"); err != nil {
		return err
	}
	if err := cli.Warning("Certificate expires in 7 days"); err != nil {
		return err
	}
	if err := cli.Error("One replica is unreachable"); err != nil {
		return err
	}
	if err := cli.Debug("retry budget: 3"); err != nil {
		return err
	}

	if err := cli.Section("Data"); err != nil {
		return err
	}
	err := cli.Table(
		[]string{"Service", "Status", "Latency"},
		[][]string{
			{"gateway", "healthy", "12ms"},
			{"billing", "degraded", "340ms"},
			{"search", "healthy", "45ms"},
		},
		"Cluster overview",
	)
	if err != nil {
		return err
	}

	if err := cli.Summary([]clicycle.SummaryItem{
		{Label: "Services", Value: "3"},
		{Label: "Healthy", Value: "2"},
		{Label: "Mean latency", Value: "132ms"},
	}); err != nil {
		return err
	}

	if err := cli.Section("Code"); err != nil {
		return err
	}
	if err := cli.Code(demoSnippet, "go"); err != nil {
		return err
	}

	if err := cli.Section("Progress"); err != nil {
		return err
	}
	task, err := cli.Progress("Deploying", 5)
	if err != nil {
		return err
	}
	for i := 0; i < 5; i++ {
		time.Sleep(150 * time.Millisecond)
		if err := task.Advance(1); err != nil {
			return err
		}
	}
	if err := task.Close(); err != nil {
		return err
	}

	return cli.Success("Demo complete")
}
