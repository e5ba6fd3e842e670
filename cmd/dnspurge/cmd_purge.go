package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dnspurge/dnspurge/adapters/purger/cloudflare"
	"github.com/dnspurge/dnspurge/domain/model"
	"github.com/dnspurge/dnspurge/internal/logging"
	"github.com/dnspurge/dnspurge/internal/report"
	"github.com/dnspurge/dnspurge/usecase/purge"
	"github.com/spf13/cobra"
)

func newCmdPurge() *cobra.Command {
	var (
		typesArg string
		delay    float64
		threads  int
		verbose  bool
		export   string
		endpoint string
	)
	cmd := &cobra.Command{
		Use:                "purge <domain>",
		Short:              "Purge cached DNS records for a domain",
		Args:               cobra.ExactArgs(1),
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			domain := strings.TrimSpace(args[0])
			if domain == "" {
				return fmt.Errorf("domain is required")
			}

			// Flags override config file values
			cfg := getConfig()
			if !cmd.Flags().Changed("types") && cfg.Types != "" {
				typesArg = cfg.Types
			}
			if !cmd.Flags().Changed("delay") && cfg.Delay != 0 {
				delay = cfg.Delay
			}
			if !cmd.Flags().Changed("threads") && cfg.Threads != 0 {
				threads = cfg.Threads
			}
			if endpoint == "" {
				endpoint = cfg.Endpoint
			}
			delayDur := time.Duration(delay * float64(time.Second))

			ctx := cmd.Context()
			logger := logging.FromContext(ctx)

			types, rejected := model.ParseRecordTypes(typesArg)
			if len(rejected) > 0 {
				logger.Warnf(ctx, "Skipping unknown DNS types: %s", strings.Join(rejected, ", "))
			}
			if len(types) == 0 {
				return fmt.Errorf("%w: %s", model.ErrNoValidTypes, strings.Join(rejected, ", "))
			}

			runRepo, err := buildRunRepository(cmd)
			if err != nil {
				return err
			}

			u := &purge.UseCase{
				Repos:  &purge.Repos{Run: runRepo},
				Purger: cloudflare.New(cloudflare.Options{Endpoint: endpoint, UserAgent: "dnspurge/" + version}),
			}
			out := cmd.OutOrStdout()
			reporter := report.New(out, types, verbose)

			ctx, cleanup := withCmdRunLogger(ctx, "purge.run", domain)
			defer func() { cleanup(err) }()

			if threads > 1 && verbose && delay > 0 {
				fmt.Fprintf(out, "[INFO] Multithreading with %d threads and %.2fs delay between submissions.\n", threads, delay)
			}

			res, err := u.Run(ctx, &purge.RunInput{
				Domain:    domain,
				Types:     types,
				Delay:     delayDur,
				Threads:   threads,
				OnOutcome: reporter.Outcome,
			})
			if err != nil {
				return err
			}

			reporter.Summary(res.Result)

			// An interrupt must not lose the partial results, so the export
			// and history writes run on an uncancelable context.
			flushCtx := context.WithoutCancel(ctx)
			if export != "" {
				exp, err := u.Export(flushCtx, &purge.ExportInput{Result: res.Result, Format: export, Dir: cfg.Export.Dir})
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "[INFO] Results exported to %s\n", exp.Path)
			}
			if runRepo != nil {
				rec, err := u.Record(flushCtx, &purge.RecordInput{
					Domain:     domain,
					Threads:    threads,
					Delay:      delayDur,
					Result:     res.Result,
					StartedAt:  res.StartedAt,
					FinishedAt: res.FinishedAt,
				})
				if err != nil {
					logger.Warnf(ctx, "Recording run history failed: %s", err)
				} else {
					logger.Info(ctx, "run recorded", "runId", rec.RunID)
				}
			}

			if res.Interrupted {
				return fmt.Errorf("interrupted after %d of %d record types", res.Result.Len(), len(types))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typesArg, "types", "t", "", "Record types to purge, comma or space separated (default: all supported types)")
	cmd.Flags().Float64VarP(&delay, "delay", "d", 0, "Delay in seconds between requests (single worker) or submissions (pool)")
	cmd.Flags().IntVar(&threads, "threads", 1, "Number of concurrent workers")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each purge result as it completes")
	cmd.Flags().StringVar(&export, "export", "", "Export results as json or csv to purge_log_<domain>.<ext> in the working directory")
	cmd.Flags().Lookup("export").NoOptDefVal = "json"
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Purge API endpoint (default \""+cloudflare.DefaultEndpoint+"\")")
	return cmd
}
