package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"irweave/internal/daemon"
	"irweave/internal/logging"
	"irweave/internal/preflight"
	"irweave/internal/queue"
	"irweave/internal/workflow"
)

func newDaemonCommand(ctx *commandContext) *cobra.Command {
	daemonCmd := &cobra.Command{
		Use:   "daemon",
		Short: "Manage the background conversion daemon",
	}

	daemonCmd.AddCommand(newDaemonRunCommand(ctx))
	daemonCmd.AddCommand(newDaemonStatusCommand(ctx))

	return daemonCmd
}

func newDaemonRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the daemon in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

			store, err := queue.Open(cfg)
			if err != nil {
				return fmt.Errorf("open queue: %w", err)
			}
			defer store.Close()

			manager := workflow.NewManager(cfg, store, logger)
			d, err := daemon.New(cfg, store, logger, manager)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := d.Start(runCtx); err != nil {
				return err
			}
			d.Wait()
			d.Stop()
			return nil
		},
	}
}

func newDaemonStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon queue and lock information",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Queue database: %s\n", cfg.QueueDBPath())

			checkRows := make([][]string, 0, 3)
			for _, check := range preflight.CheckAll(cfg) {
				state := "ok"
				if !check.Passed {
					state = "failed"
				}
				checkRows = append(checkRows, []string{check.Name, state, check.Detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Check", "State", "Detail"}, checkRows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))

			return ctx.withStore(func(store *queue.Store) error {
				summary, err := store.Health(cmd.Context())
				if err != nil {
					return fmt.Errorf("queue health: %w", err)
				}
				headers := []string{"Status", "Count"}
				rows := [][]string{
					{"pending", fmt.Sprintf("%d", summary.Pending)},
					{"converting", fmt.Sprintf("%d", summary.Converting)},
					{"converted", fmt.Sprintf("%d", summary.Converted)},
					{"failed", fmt.Sprintf("%d", summary.Failed)},
					{"total", fmt.Sprintf("%d", summary.Total)},
				}
				fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignRight}))
				return nil
			})
		},
	}
}
