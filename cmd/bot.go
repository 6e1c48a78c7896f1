package main

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"
	tbmiddleware "gopkg.in/telebot.v3/middleware"

	"driver-buddy/internal/delivery/telegram"
	"driver-buddy/internal/delivery/telegram/flows"
)

func newBotCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(ctx, func(a *app) error {
				if err := a.cfg.ValidateBot(); err != nil {
					return err
				}
				return runBot(ctx, a)
			})
		},
	}
}

func runBot(ctx context.Context, a *app) error {
	log.Println("[init] starting Telegram bot...")

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  a.cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			log.Printf("[bot] update error: %v", err)
		},
	})
	if err != nil {
		return err
	}
	bot.Use(tbmiddleware.Recover())

	handler := telegram.NewHandler(bot, a.drivers, &flows.Deps{
		Pay:      a.pay,
		Time:     a.time,
		Settings: a.settings,
		Export:   a.export,
		Async:    a.async,
	})
	handler.Register()

	go func() {
		<-ctx.Done()
		log.Println("[shutdown] stopping bot")
		bot.Stop()
	}()

	log.Println("[init] bot started")
	bot.Start()
	return nil
}
