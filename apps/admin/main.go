package main

import (
	"context"
	"log"
	"os"

	"github.com/vazifa-app/vazifa/core"
	"github.com/vazifa-app/vazifa/core/deletion"
	"github.com/vazifa-app/vazifa/core/user"
	"github.com/vazifa-app/vazifa/services/logger"
	"github.com/vazifa-app/vazifa/storage/database"
	"github.com/vazifa-app/vazifa/storage/database/mongodb"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	errAndDie(conf.Validate())

	appLogger := newAppLogger(conf, logger)

	// set up DB
	ctx := context.Background()
	db, err := database.Open(ctx, conf)
	errAndDie(err)
	defer func() { _ = db.Client().Disconnect(ctx) }()
	errAndDie(database.EnsureIndexes(ctx, db))

	// set up repos & services
	usrRepo := mongorepos.NewUserRepository(db)
	usrSvc := user.NewService(usrRepo)
	delSvc := deletion.NewService(
		usrRepo,
		mongorepos.NewTaskRepository(db),
		mongorepos.NewCommentRepository(db),
		mongorepos.NewWorkspaceRepository(db),
		mongorepos.NewActivityRepository(db),
		appLogger,
	)

	// start CLI
	cli := commandLine{
		usrSvc: usrSvc,
		delSvc: delSvc,
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

// newAppLogger reports to Rollbar when a token is configured, the way the
// deployed environments run; locally it stays on stdout only.
func newAppLogger(conf *core.Config, std *log.Logger) core.Logger {
	if conf.RollbarToken != "" {
		rl := logsvc.NewRollbarLogger(std, conf)
		rl.Enable(!conf.Debug)
		return rl
	}
	return logsvc.NewStdLogger(std)
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
