// Command nicologin logs in to NicoNico with MAIL_TEL/PASSWORD from the
// environment (or a .env file) and prints the user session token.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/niconico/internal/cli"
	"github.com/dmitrijs2005/niconico/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes one nicologin invocation with args (without the program
// name) and returns the process exit code.
func run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("configuration error: %v", r)
			code = 2
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config.LoadConfig(args)

	creds, err := config.LoadCredentials(".env")
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}
	defer app.Close()

	if err := app.Run(ctx, creds); err != nil {
		return 1
	}
	return 0
}
