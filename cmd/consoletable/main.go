// Command consoletable browses the console tables in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"travelconsole/internal/catalog"
	intconfig "travelconsole/internal/config"
	"travelconsole/internal/repositories"
	"travelconsole/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code so deferred cleanup finishes before exit.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("consoletable", flag.ContinueOnError)
	fs.SetOutput(stderr)
	slug := fs.String("table", "bus-operators", "table to open first")
	list := fs.Bool("list", false, "print the table slugs and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	// keep log lines from tearing the alt screen
	log.SetOutput(io.Discard)

	cfg, err := intconfig.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	store, err := repositories.OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "store: %v\n", err)
		return 1
	}
	defer intconfig.CloseDB()

	c := catalog.New(store, cfg.Table.RowsPerPageOptions)
	if *list {
		for _, info := range c.Infos() {
			fmt.Fprintf(stdout, "%-22s %s\n", info.Slug, info.Title)
		}
		return 0
	}

	m, err := tui.New(context.Background(), c, *slug)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(stderr, "tui: %v\n", err)
		return 1
	}
	return 0
}
