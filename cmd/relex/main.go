package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/revelaction/relex/config"
	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	config.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(ui).RunContext(ctx, os.Args); err != nil {
		fprintErr(ui.Err, err)
		stop()
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "relex: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:                 "relex",
		Usage:                "count adjective-noun and subject-verb-object patterns in dependency-parsed corpora",
		Version:              fmt.Sprintf("%s (commit: %s)", BuildTag, BuildCommit),
		HideVersion:          true,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			amodCommand(ui),
			svoCommand(ui),
			statCommand(ui),
			queryCommand(ui),
			bashCommand(ui),
			versionCommand(ui),
		},
	}
}
