package router

import (
	"log"
	"strings"

	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// PrefixFunc receives every callback whose key starts with a registered
// prefix, e.g. the calendar's cal_* keys.
type PrefixFunc func(c telebot.Context, key, payload string) error

type CallbackRouter struct {
	handlers map[string]HandlerFunc
	prefixes map[string]PrefixFunc
}

func New() *CallbackRouter {
	return &CallbackRouter{
		handlers: make(map[string]HandlerFunc),
		prefixes: make(map[string]PrefixFunc),
	}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

func (r *CallbackRouter) RegisterPrefix(prefix string, h PrefixFunc) {
	r.prefixes[prefix] = h
}

// ParseData splits raw callback data "\fkey|payload". The payload may itself
// contain '|'.
func ParseData(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key = raw
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		key = raw[:i]
		payload = raw[i+1:]
	}
	return key, payload
}

func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// Dispatch answers the callback and runs the matching handler. It reports
// whether any handler claimed the key.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := ParseData(c.Data())
	log.Printf("[callback] key=%q payload=%q", key, payload)
	_ = c.Respond()

	if h, ok := r.handlers[key]; ok {
		return true, h(c, payload)
	}
	for prefix, h := range r.prefixes {
		if strings.HasPrefix(key, prefix) {
			return true, h(c, key, payload)
		}
	}
	return false, nil
}
