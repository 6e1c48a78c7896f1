package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"

	"driver-buddy/internal/model"
)

type fakeRegistrar struct {
	calls int
	err   error
	last  model.Driver
}

func (f *fakeRegistrar) Ensure(ctx context.Context, d model.Driver) (model.Driver, error) {
	f.calls++
	f.last = d
	return d, f.err
}

type updateCtx struct {
	telebot.Context
	sender *telebot.User
	chat   *telebot.Chat
}

func (c *updateCtx) Sender() *telebot.User { return c.sender }
func (c *updateCtx) Chat() *telebot.Chat   { return c.chat }

func TestEnsureDriverRegistersOnce(t *testing.T) {
	reg := &fakeRegistrar{}
	nextCalls := 0
	h := EnsureDriver(reg)(func(c telebot.Context) error {
		nextCalls++
		return nil
	})

	ctx := &updateCtx{sender: &telebot.User{ID: 7, FirstName: "Sam"}, chat: &telebot.Chat{ID: 70}}
	require.NoError(t, h(ctx))
	require.NoError(t, h(ctx))

	assert.Equal(t, 1, reg.calls)
	assert.Equal(t, 2, nextCalls)
	assert.Equal(t, model.Driver{ID: 7, Name: "Sam", ChatID: 70}, reg.last)
}

func TestEnsureDriverRetriesAfterFailure(t *testing.T) {
	reg := &fakeRegistrar{err: errors.New("db down")}
	h := EnsureDriver(reg)(func(c telebot.Context) error { return nil })

	ctx := &updateCtx{sender: &telebot.User{ID: 8}}
	require.NoError(t, h(ctx))
	reg.err = nil
	require.NoError(t, h(ctx))
	require.NoError(t, h(ctx))

	assert.Equal(t, 2, reg.calls)
}
