package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserChannel(t *testing.T) {
	assert.Equal(t, "notifications:user:a1", UserChannel("a1"))
}

func TestNotifier_NilClient(t *testing.T) {
	n := NewNotifier(nil)
	assert.NoError(t, n.PublishUser(context.Background(), "a1", []byte(`{}`)))
}

func TestNotifier_PublishUser(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub := rdb.Subscribe(ctx, UserChannel("a1"))
	defer func() { _ = sub.Close() }()
	_, err = sub.Receive(ctx)
	require.NoError(t, err)

	n := NewNotifier(rdb)
	require.NoError(t, n.PublishUser(ctx, "a1", []byte(`{"type":"notification"}`)))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "notifications:user:a1", msg.Channel)
		assert.JSONEq(t, `{"type":"notification"}`, msg.Payload)
	case <-ctx.Done():
		t.Fatal("timed out waiting for published message")
	}
}
