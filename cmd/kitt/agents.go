package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

func newAgentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "Inspect registered benchmark agents",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered agents",
		Args:  cobra.NoArgs,
		RunE:  runAgentsList,
	})
	return cmd
}

func runAgentsList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	resp, err := newAPIClient().listAgents(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tARCH\tGPU\tLAST HEARTBEAT")
	for _, a := range resp.Agents {
		last := "never"
		if a.LastHeartbeat != nil {
			last = formatAge(*a.LastHeartbeat)
		}
		gpu := a.GpuInfo
		if gpu == "" {
			gpu = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.Name, a.Status, a.CPUArch, gpu, last)
	}
	return w.Flush()
}

func formatAge(t time.Time) string {
	age := time.Since(t).Round(time.Second)
	if age < 0 {
		age = 0
	}
	return fmt.Sprintf("%s ago", age)
}
