package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anniehayho/contactlist/internal/app"
	"github.com/anniehayho/contactlist/internal/config"
	"github.com/anniehayho/contactlist/internal/contact"
	"github.com/anniehayho/contactlist/internal/list"
	"github.com/anniehayho/contactlist/internal/pagination"
	"github.com/anniehayho/contactlist/internal/server"
	"github.com/anniehayho/contactlist/internal/view"
	"github.com/anniehayho/contactlist/pkg/logger"
)

func main() {
	logg, err := logger.SetupLogging()
	if err != nil {
		logg = logger.SetupFallbackLogger()
	}
	defer logger.CloseLogger()

	cfg := config.NewConfig()
	application := app.NewApp(logg)

	// Directory API serving the contacts endpoint
	srv := server.NewServer(application, cfg)
	srv.SetupRoutes()
	if err := srv.Start(); err != nil {
		logg.Fatalf("Failed to start server: %v", err)
	}

	// Contact list view wired against the directory API
	fetcher := contact.NewHTTPFetcher(cfg.ContactsEndpoint)
	controller := list.NewController(fetcher, pagination.NewSimulator(), logg)
	controller.Subscribe(view.NewTerminalView(os.Stdout))
	controller.Subscribe(list.OnType(list.EventTypeAlert, list.ObserverFunc(func(event list.Event) {
		logg.Printf("Alert shown: %v", event.GetData())
	})))

	// Drive the view the way a user would: initial load, then scroll to
	// the end until pagination is exhausted, then tap the first row.
	go func() {
		// Give the server a moment to start listening
		time.Sleep(200 * time.Millisecond)

		controller.Load()
		for controller.Snapshot().HasMoreData {
			controller.LoadMore()
		}
		if len(controller.Snapshot().Contacts) > 0 {
			controller.Select(0)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	controller.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
