package main

import (
	"context"
	"fmt"
)

// deleteUser runs the account removal workflow and prints its summary.
// The identifier may be an id, an email or a phone number.
func (cli *commandLine) deleteUser(identifier string) error {
	summary, err := cli.delSvc.Run(context.Background(), identifier)
	if err != nil {
		return err
	}

	if len(summary.Orphaned) > 0 {
		fmt.Fprintln(cli.out)
		fmt.Fprintln(cli.out, "WARNING: the following workspaces were owned by the deleted user and need a new owner:")
		for _, ws := range summary.Orphaned {
			fmt.Fprintf(cli.out, "  - %s (id=%s)\n", ws.Name, ws.ID)
		}
	}

	fmt.Fprintln(cli.out)
	fmt.Fprintln(cli.out, "Done. Summary:")
	fmt.Fprintf(cli.out, "  created tasks reassigned:   %d\n", summary.TasksCreated)
	fmt.Fprintf(cli.out, "  assigned tasks updated:     %d\n", summary.TasksAssigned)
	fmt.Fprintf(cli.out, "  managed tasks cleared:      %d\n", summary.ManagerTasks)
	fmt.Fprintf(cli.out, "  comments reassigned:        %d\n", summary.Comments)
	fmt.Fprintf(cli.out, "  responses reassigned:       %d\n", summary.Responses)
	fmt.Fprintf(cli.out, "  activity logs reassigned:   %d\n", summary.Activities)
	fmt.Fprintf(cli.out, "  workspace memberships removed: %d\n", summary.Workspaces)
	fmt.Fprintf(cli.out, "  orphaned workspaces:        %d\n", len(summary.Orphaned))
	fmt.Fprintf(cli.out, "  sentinel account:           %s\n", summary.SentinelID)
	return nil
}
