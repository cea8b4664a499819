package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/vazifa-app/vazifa/core/deletion"
	"github.com/vazifa-app/vazifa/core/user"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	usrSvc *user.Service
	delSvc *deletion.Service
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  deleteuser ID|EMAIL|PHONE - delete a user; their tasks, comments and activity are kept and reassigned")
	fmt.Fprintln(cli.out, "  migrateverification       - backfill the email verification flag from the legacy field")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "deleteuser":
		if len(args) < 3 || args[2] == "" {
			cli.printUsage()
			return errHelp
		}
		return cli.deleteUser(args[2])
	case "migrateverification":
		return cli.migrateVerification()
	default:
		cli.printUsage()
		return errHelp
	}
}
