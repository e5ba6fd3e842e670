package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dnspurge/dnspurge/domain/model"
	"github.com/dnspurge/dnspurge/usecase/history"
	"github.com/spf13/cobra"
)

func newCmdHistory() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "history",
		Short:         "Inspect recorded purge runs",
		RunE:          func(cmd *cobra.Command, args []string) error { return cmd.Help() },
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newCmdHistoryList())
	cmd.AddCommand(newCmdHistoryShow())
	return cmd
}

// buildHistoryUseCase wires the history use case, requiring a db-url.
func buildHistoryUseCase(cmd *cobra.Command) (*history.UseCase, error) {
	repo, err := buildRunRepository(cmd)
	if err != nil {
		return nil, err
	}
	if repo == nil {
		return nil, fmt.Errorf("%w: set --db-url or dbUrl in dnspurge.yml", model.ErrHistoryDisabled)
	}
	return &history.UseCase{Repos: &history.Repos{Run: repo}}, nil
}

// runView is the JSON line representation for history listings.
type runView struct {
	ID        string  `json:"id"`
	Domain    string  `json:"domain"`
	StartedAt string  `json:"startedAt"`
	Delay     float64 `json:"delay"`
	Threads   int     `json:"threads"`
	Successes int     `json:"successes"`
	Failures  int     `json:"failures"`
}

func toRunView(r *model.Run) runView {
	return runView{
		ID:        r.ID,
		Domain:    r.Domain,
		StartedAt: r.StartedAt.Format(time.RFC3339),
		Delay:     r.Delay.Seconds(),
		Threads:   r.Threads,
		Successes: r.Successes,
		Failures:  r.Failures,
	}
}

// runDetail adds the outcome rows for history show.
type runDetail struct {
	runView
	FinishedAt string               `json:"finishedAt"`
	Outcomes   []model.PurgeOutcome `json:"outcomes"`
}

func newCmdHistoryList() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent purge runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildHistoryUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			runs, err := uc.List(ctx, limit)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, r := range runs {
				if err := enc.Encode(toRunView(r)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list (0 lists all)")
	return cmd
}

func newCmdHistoryShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one purge run with its outcomes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildHistoryUseCase(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			out, err := uc.Get(ctx, &history.GetInput{RunID: args[0]})
			if err != nil {
				return err
			}
			r := out.Run
			detail := runDetail{
				runView:    toRunView(r),
				FinishedAt: r.FinishedAt.Format(time.RFC3339),
				Outcomes:   r.Outcomes,
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(detail)
		},
	}
}
