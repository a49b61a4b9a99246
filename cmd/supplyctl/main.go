// Command supplyctl is a terminal front end for the requisition gateway.
//
//	supplyctl [-url URL] [-user NAME] [-password PW] <command> [flags]
//
// Commands:
//
//	products                         list the catalog
//	orders                           list your orders (all orders for an admin)
//	order -item ID:QTY:UNIT ...      submit a requisition (employee)
//	advance ORDER_ID                 move an order to its next status (admin)
//	add-product -name N -description D [-image URL] [-out-of-stock]
//	update-product -id ID [-name N] [-description D] [-image URL] [-in-stock true|false]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"supplydesk/internal/app"
	"supplydesk/internal/client"
	"supplydesk/internal/config"
	"supplydesk/internal/logger"
)

var (
	errUsage        = errors.New("usage: supplyctl [flags] <products|orders|order|advance|add-product|update-product> [args]")
	errEmployeeOnly = errors.New("command requires an employee account")
)

type globalOptions struct {
	gatewayURL string
	timeout    time.Duration
	username   string
	password   string
}

func main() {
	cfg := config.LoadClientConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if err := run(context.Background(), cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, args []string, stdout, stderr io.Writer) error {
	var opts globalOptions
	fs := flag.NewFlagSet("supplyctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.gatewayURL, "url", cfg.GatewayURL, "gateway endpoint")
	fs.DurationVar(&opts.timeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&opts.username, "user", os.Getenv("SUPPLYDESK_USER"), "login name")
	fs.StringVar(&opts.password, "password", os.Getenv("SUPPLYDESK_PASSWORD"), "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}
	cmd, cmdArgs := rest[0], rest[1:]
	if _, ok := commands[cmd]; !ok {
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}

	gw, err := client.New(opts.gatewayURL, client.WithTimeout(opts.timeout))
	if err != nil {
		return err
	}

	session := app.NewSession(gw, app.NewWriterNotifier(stderr))
	ws, err := session.Login(ctx, opts.username, opts.password)
	if err != nil {
		return err
	}
	defer session.Logout()

	return commands[cmd](ctx, ws, cmdArgs, stdout)
}
