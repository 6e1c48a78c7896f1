package flows

import (
	"context"
	"errors"
	"log"
	"time"

	"gopkg.in/telebot.v3"

	"driver-buddy/internal/app/service"
	"driver-buddy/internal/domain"
)

const callTimeout = 10 * time.Second

// Deps are the services the callback flows talk to.
type Deps struct {
	Pay      *service.PayService
	Time     *service.TimeService
	Settings *service.SettingsService
	Export   *service.ExportService
	Async    *service.AsyncService
	Now      func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// Call runs fn on the worker pool with a bounded context.
func Call[T any](d *Deps, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	return service.Run(ctx, d.Async, func() (T, error) { return fn(ctx) })
}

// Explain turns a service error into something safe to show the driver.
func Explain(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "That item no longer exists."
	case errors.Is(err, domain.ErrInvalidTime):
		return "Times must be HHMM-HHMM, e.g. 0600-1430."
	case errors.Is(err, domain.ErrInvalidDate):
		return "That date is not valid."
	case errors.Is(err, domain.ErrNoEntries):
		return "Nothing to submit yet. Log a shift first."
	case errors.Is(err, domain.ErrInvalidSettings):
		return "That setting value is not allowed."
	case errors.Is(err, domain.ErrCloudUnavailable):
		return "Cloud storage is not available right now. Switch storage to local in ⚙️ Settings."
	case errors.Is(err, context.DeadlineExceeded):
		return "That took too long, please try again."
	}
	return "Something went wrong, please try again."
}

// Fail logs err under tag and tells the driver.
func Fail(c telebot.Context, tag string, err error) error {
	log.Printf("[%s] user=%d: %v", tag, senderID(c), err)
	return c.Send(Explain(err))
}

func senderID(c telebot.Context) int64 {
	if s := c.Sender(); s != nil {
		return s.ID
	}
	return 0
}
