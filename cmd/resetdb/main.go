// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command resetdb deletes every feedback record.
//
//	resetdb -t postgres -d "postgres://..."      # asks for confirmation
//	resetdb -yes                                 # uses DATABASE_URL, no prompt
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/party-feedback/db"
	"github.com/danielhkuo/party-feedback/feedback"
	"github.com/danielhkuo/party-feedback/logging"
	"github.com/danielhkuo/party-feedback/store"
)

func main() {
	_ = godotenv.Load()
	logging.Init("party-feedback-resetdb", "development")

	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "resetdb:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	var dbURL, dbType string
	var yes bool

	fs := flag.NewFlagSet("resetdb", flag.ContinueOnError)
	fs.StringVar(&dbURL, "d", os.Getenv("DATABASE_URL"), "Database URL")
	fs.StringVar(&dbType, "t", os.Getenv("DATABASE_TYPE"), "Database type (sqlite or postgres)")
	fs.BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if dbURL == "" {
		return fmt.Errorf("database URL required (use -d or DATABASE_URL env)")
	}
	if dbType == "" {
		dbType = db.TypeSQLite
	}

	conn, err := store.Open(ctx, dbType, dbURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	// A fresh database has no table yet; deleting from it is still a no-op
	if err := db.CreateSchema(conn, dbType); err != nil {
		return err
	}

	st, err := store.New(conn, dbType)
	if err != nil {
		return err
	}
	svc := feedback.NewService(st)

	if !yes {
		report, err := svc.Report(ctx)
		if err != nil {
			return err
		}
		if report.Stats.Total == 0 {
			fmt.Fprintln(out, "No feedback to delete.")
			return nil
		}
		ok, err := confirm(in, out, fmt.Sprintf(
			"Delete all %s feedback records? This cannot be undone. [y/N]: ",
			humanize.Comma(int64(report.Stats.Total))))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	n, err := svc.Reset(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Deleted %s feedback records.\n", humanize.Comma(n))
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes", nil
}
