package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/paypay-hub/paypay-admin-bot/accounts"
	"github.com/paypay-hub/paypay-admin-bot/bot"
	"github.com/paypay-hub/paypay-admin-bot/configs"
	"github.com/paypay-hub/paypay-admin-bot/datastore/gorm"
	"github.com/paypay-hub/paypay-admin-bot/handlers"
	"github.com/paypay-hub/paypay-admin-bot/paypay"
	"github.com/paypay-hub/paypay-admin-bot/refresher"
	"github.com/paypay-hub/paypay-admin-bot/selector"
)

const version = "0.1.0"

var (
	sha1ver   string // sha1 revision used to build the program
	buildTime string // when the executable was built
)

func main() {
	var printVersion bool

	flag.BoolVar(&printVersion, "version", false, "if true, print version and exit")
	flag.Parse()

	if printVersion {
		fmt.Printf("v%s build on %s from sha1 %s\n", version, buildTime, sha1ver)
		os.Exit(0)
	}

	cfg, err := configs.Parse()
	if err != nil {
		log.Fatal(err)
	}

	runBot(cfg)

	os.Exit(0)
}

func runBot(cfg *configs.Config) {
	configs.ConfigureLogger(cfg.LogLevel)

	log.Info("Starting bot")

	if cfg.BotToken == "" {
		log.Fatal("DISCORD_BOT_TOKEN is not set, bot will not run")
	}

	// Database
	db, err := gorm.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer gorm.Close(db)

	if err := gorm.Migrate(db); err != nil {
		log.Fatal(err)
	}

	// Services
	accountService := accounts.NewService(accounts.NewGormStore(db))
	dial := paypay.NewFactory(cfg.PayPayAPIURL)
	refreshService := refresher.NewService(accountService, dial)

	sel := selector.New(accountService)
	sel.Initialize()

	// Liveness server, independent of the dispatcher.
	srv := handlers.NewServer(cfg, handlers.NewRouter(func() (interface{}, error) {
		state := sel.Current()
		return map[string]string{
			"status":  state.Status.String(),
			"account": state.ID,
		}, nil
	}))

	go func() {
		log.
			WithFields(log.Fields{
				"host": cfg.Host,
				"port": cfg.Port,
			}).
			Info("Liveness server listening")
		if err := srv.ListenAndServe(); err != nil {
			log.Warn(err)
		}
	}()

	// Discord dispatcher
	b, err := bot.New(cfg, accountService, sel, refreshService, dial)
	if err != nil {
		log.Fatal(err)
	}

	if err := b.Start(); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := b.Stop(); err != nil {
			log.Warn(err)
		}
		log.Info("Closed Discord session")
	}()

	// Trap interrupt and shut down gracefully.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)

	sig := <-c

	log.Infof("Got signal: %s. Shutting down..", sig)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnf("Error in server shutdown: %s", err)
	}
}
