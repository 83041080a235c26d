package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Kirizan/kitt-sub000/pkg/models"
)

// campaignFile is the YAML format accepted by `kitt campaign run`:
// the campaign config plus the target agent's name.
type campaignFile struct {
	Agent  string                `yaml:"agent"`
	Config models.CampaignConfig `yaml:",inline"`
}

func newCampaignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Create and manage benchmark campaigns",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "run <file>",
			Short: "Create a campaign from a YAML file and start it",
			Args:  cobra.ExactArgs(1),
			RunE:  runCampaignRun,
		},
		&cobra.Command{
			Use:   "status [id]",
			Short: "Show campaign progress, or list campaigns when no id is given",
			Args:  cobra.MaximumNArgs(1),
			RunE:  runCampaignStatus,
		},
		&cobra.Command{
			Use:   "cancel <id>",
			Short: "Cancel a campaign",
			Args:  cobra.ExactArgs(1),
			RunE:  runCampaignCancel,
		},
	)
	return cmd
}

func runCampaignRun(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return userErrorf("cannot read campaign file: %v", err)
	}

	var file campaignFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return userErrorf("invalid campaign file: %v", err)
	}
	if file.Agent == "" {
		return userErrorf("campaign file must name a target agent")
	}
	if err := file.Config.Validate(); err != nil {
		return userErrorf("invalid campaign config: %v", err)
	}

	ctx, cancel := commandContext()
	defer cancel()
	client := newAPIClient()

	agentID, err := client.getAgentID(ctx, file.Agent)
	if err != nil {
		return err
	}

	created, err := client.createCampaign(ctx, models.CreateCampaignRequest{
		AgentID: agentID,
		Config:  file.Config,
	})
	if err != nil {
		return err
	}

	if err := client.startCampaign(ctx, created.CampaignID); err != nil {
		return err
	}

	fmt.Printf("Campaign %s started on agent %s\n", created.CampaignID, file.Agent)
	return nil
}

func runCampaignStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()
	client := newAPIClient()

	if len(args) == 0 {
		resp, err := client.listCampaigns(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTATUS\tCREATED")
		for _, c := range resp.Campaigns {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Status, formatAge(c.CreatedAt))
		}
		return w.Flush()
	}

	snap, err := client.getCampaign(ctx, args[0])
	if err != nil {
		return err
	}

	c := snap.Campaign
	fmt.Printf("Campaign:  %s (%s)\n", c.Name, c.ID)
	fmt.Printf("Status:    %s\n", c.Status)
	fmt.Printf("Runs:      %d total, %d succeeded, %d failed, %d skipped, %d cancelled, %d pending\n",
		snap.TotalRuns, snap.Succeeded, snap.Failed, snap.Skipped, snap.Cancelled, snap.PendingOrRunning)
	if len(snap.TopFailureKinds) > 0 {
		fmt.Println("Failures:")
		for _, fk := range snap.TopFailureKinds {
			fmt.Printf("  %-24s %d\n", fk.Kind, fk.Count)
		}
	}
	return nil
}

func runCampaignCancel(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	if err := newAPIClient().cancelCampaign(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Campaign %s cancelled\n", args[0])
	return nil
}
