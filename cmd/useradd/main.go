// Command useradd provisions a login for the requisition gateway.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"supplydesk/internal/config"
	"supplydesk/internal/db"
	"supplydesk/internal/logger"
	"supplydesk/internal/user"

	"go.uber.org/zap"
)

var errMissingFlags = errors.New("-username and -password are required")

type options struct {
	username string
	password string
	admin    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.username, "username", "", "login name")
	flag.StringVar(&opts.password, "password", "", "initial password")
	flag.BoolVar(&opts.admin, "admin", false, "grant administrator role")
	flag.Parse()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database, err := db.NewDatabase(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect db", zap.Error(err))
	}
	defer database.Close()

	svc := user.NewService(user.NewRepository(database), cfg.JWTSecret)
	if err := run(context.Background(), svc, opts, os.Stdout); err != nil {
		logger.L().Fatal("useradd failed", zap.Error(err))
	}
}

func run(ctx context.Context, svc user.Service, opts options, out io.Writer) error {
	if opts.username == "" || opts.password == "" {
		return errMissingFlags
	}

	u, err := svc.Register(ctx, opts.username, opts.password, opts.admin)
	if err != nil {
		return fmt.Errorf("register %q: %w", opts.username, err)
	}

	fmt.Fprintf(out, "created user %d %s (%s)\n", u.ID, u.Username, u.Role())
	return nil
}
