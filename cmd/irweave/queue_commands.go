package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"irweave/internal/config"
	"irweave/internal/queue"
)

func newQueueCommand(ctx *commandContext) *cobra.Command {
	queueCmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and manage the conversion queue",
	}

	queueCmd.AddCommand(newQueueStatusCommand(ctx))
	queueCmd.AddCommand(newQueueListCommand(ctx))
	queueCmd.AddCommand(newQueueAddCommand(ctx))
	queueCmd.AddCommand(newQueueRetryCommand(ctx))
	queueCmd.AddCommand(newQueueClearCommand(ctx))

	return queueCmd
}

func newQueueStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show queue status summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *queue.Store) error {
				summary, err := store.Health(cmd.Context())
				if err != nil {
					return err
				}
				if summary.Total == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty")
					return nil
				}
				rows := [][]string{
					{"pending", strconv.Itoa(summary.Pending)},
					{"converting", strconv.Itoa(summary.Converting)},
					{"converted", strconv.Itoa(summary.Converted)},
					{"failed", strconv.Itoa(summary.Failed)},
					{"total", strconv.Itoa(summary.Total)},
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Status", "Count"}, rows,
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

func newQueueListCommand(ctx *commandContext) *cobra.Command {
	var listStatuses []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queue items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *queue.Store) error {
				statuses := make([]queue.Status, 0, len(listStatuses))
				for _, statusStr := range listStatuses {
					status := queue.Status(statusStr)
					if !queue.ValidStatus(status) {
						return fmt.Errorf("unknown status %q", statusStr)
					}
					statuses = append(statuses, status)
				}

				items, err := store.List(cmd.Context(), statuses...)
				if err != nil {
					return err
				}
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty")
					return nil
				}

				rows := make([][]string, 0, len(items))
				for _, item := range items {
					detail := item.OutputPath
					if item.Status == queue.StatusFailed || item.Status == queue.StatusPending {
						detail = item.ErrorMessage
					}
					rows = append(rows, []string{
						strconv.FormatInt(item.ID, 10),
						item.SourcePath,
						string(item.Status),
						item.CreatedAt.Local().Format(time.DateTime),
						detail,
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Source", "Status", "Created", "Detail"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&listStatuses, "status", nil, "Filter by status (repeatable)")
	return cmd
}

func newQueueAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <capture-file>...",
		Short: "Enqueue capture files for conversion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *queue.Store) error {
				for _, arg := range args {
					path, err := config.ExpandPath(arg)
					if err != nil {
						return err
					}
					item, err := store.Add(cmd.Context(), path)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Queued %s as item %d\n", path, item.ID)
				}
				return nil
			})
		},
	}
}

func newQueueRetryCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "retry [item-id]...",
		Short: "Return failed items to pending",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid item id %q", arg)
				}
				ids = append(ids, id)
			}
			return ctx.withStore(func(store *queue.Store) error {
				affected, err := store.Retry(cmd.Context(), ids...)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Requeued %d item(s)\n", affected)
				return nil
			})
		},
	}
}

func newQueueClearCommand(ctx *commandContext) *cobra.Command {
	var failedOnly bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove items from the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *queue.Store) error {
				var statuses []queue.Status
				if failedOnly {
					statuses = append(statuses, queue.StatusFailed)
				}
				affected, err := store.Clear(cmd.Context(), statuses...)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d item(s)\n", affected)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&failedOnly, "failed", false, "Only remove failed items")
	return cmd
}
