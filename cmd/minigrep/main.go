// Command minigrep prints the lines of a file that contain a query.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/minigrep/internal/adapters/driven/config/file"
	"github.com/custodia-labs/minigrep/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/cli"
	"github.com/custodia-labs/minigrep/internal/connectors/filesystem"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store driven.ConfigStore
	fileStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: settings unavailable, using defaults: %v\n", err)
		store = memory.NewConfigStore()
	} else {
		store = fileStore
	}

	reader := filesystem.NewReader()
	watcher := filesystem.NewWatcher()
	defer watcher.Close()

	search := services.NewSearchService(reader)
	search.SetWatcher(watcher)

	cli.SetServices(cli.Services{
		Search:   search,
		Settings: services.NewSettingsService(store),
		Source:   reader,
	})

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}
