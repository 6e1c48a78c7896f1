package middleware

import (
	"context"
	"log"
	"sync"
	"time"

	"gopkg.in/telebot.v3"

	"driver-buddy/internal/model"
)

type DriverRegistrar interface {
	Ensure(ctx context.Context, d model.Driver) (model.Driver, error)
}

// EnsureDriver registers the sender on their first update. Failures are
// logged and never block the update.
func EnsureDriver(drivers DriverRegistrar) telebot.MiddlewareFunc {
	var seen sync.Map
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}
			if _, ok := seen.Load(sender.ID); !ok {
				d := model.Driver{ID: sender.ID, Name: sender.FirstName}
				if chat := c.Chat(); chat != nil {
					d.ChatID = chat.ID
				}
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				_, err := drivers.Ensure(ctx, d)
				cancel()
				if err != nil {
					log.Printf("[driver] register %d: %v", sender.ID, err)
				} else {
					seen.Store(sender.ID, struct{}{})
				}
			}
			return next(c)
		}
	}
}
