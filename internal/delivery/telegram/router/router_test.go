package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type callbackCtx struct {
	telebot.Context
	data      string
	responded bool
}

func (c *callbackCtx) Data() string { return c.data }

func (c *callbackCtx) Respond(...*telebot.CallbackResponse) error {
	c.responded = true
	return nil
}

func TestParseData(t *testing.T) {
	tests := []struct {
		raw, key, payload string
	}{
		{"\fhist|week|2024-06-10", "hist", "week|2024-06-10"},
		{"\fsubmit_day", "submit_day", ""},
		{"pay_today|", "pay_today", ""},
	}
	for _, tt := range tests {
		key, payload := ParseData(tt.raw)
		assert.Equal(t, tt.key, key, tt.raw)
		assert.Equal(t, tt.payload, payload, tt.raw)
	}
}

func TestDispatch(t *testing.T) {
	r := New()
	var gotPayload, gotPrefixKey string
	r.Register("entry_del", func(c telebot.Context, payload string) error {
		gotPayload = payload
		return nil
	})
	r.RegisterPrefix("cal_", func(c telebot.Context, key, payload string) error {
		gotPrefixKey = key
		return nil
	})

	ctx := &callbackCtx{data: "\fentry_del|42"}
	handled, err := r.Dispatch(ctx)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.True(t, ctx.responded)
	assert.Equal(t, "42", gotPayload)

	handled, err = r.Dispatch(&callbackCtx{data: "\fcal_next|2024-07"})
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, "cal_next", gotPrefixKey)

	handled, err = r.Dispatch(&callbackCtx{data: "\funknown"})
	require.NoError(t, err)
	assert.False(t, handled)
}
