package main

import (
	"context"
	"fmt"
)

// migrateVerification backfills User.IsEmailVerified from the legacy
// emailVerified field in one bulk update. Safe to re-run; migrated records
// no longer match.
func (cli *commandLine) migrateVerification() error {
	count, err := cli.usrSvc.MarkLegacyEmailsVerified(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "migrated verification field on %d user(s)\n", count)
	return nil
}
