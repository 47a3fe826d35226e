package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"coinwagon/internal/app"
	"coinwagon/pkg/command"
)

const usage = `usage: coinwagon <command> [args] [--verbose]

commands:
  current-price <asset> <fiat>
  address-balance <asset> <address>
  wallet-balance <wallet-file> <fiat>`

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %s", err)
	}

	if err := app.InitConfig(); err != nil {
		logrus.Fatalf("failed to read config: %s", err)
	}

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	runner := command.NewRunner(app.BuildServices())
	out, err := runner.Run(context.Background(), os.Args[1], os.Args[2:])
	if err != nil {
		if _, ok := err.(*command.UsageError); ok {
			fmt.Fprintf(os.Stderr, "Error: %v\n%s\n", err, usage)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(out)
}
