package ws

import (
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	wsclient "github.com/fasthttp/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishEncodesEvent(t *testing.T) {
	h := NewHub()

	h.Publish(EventRfidScanned, map[string]string{"uid": "04A1B2"})

	select {
	case raw := <-h.broadcast:
		var evt struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
			At   time.Time         `json:"at"`
		}
		require.NoError(t, json.Unmarshal(raw, &evt))
		assert.Equal(t, EventRfidScanned, evt.Type)
		assert.Equal(t, "04A1B2", evt.Data["uid"])
		assert.False(t, evt.At.IsZero())
	default:
		t.Fatal("expected a queued message")
	}
}

func TestHub_PublishDoesNotBlockWhenFull(t *testing.T) {
	h := NewHub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(h.broadcast)+10; i++ {
			h.Publish(EventStockChanged, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	assert.Len(t, h.broadcast, cap(h.broadcast))
}

func TestHub_RunStopsOnCancel(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()

	h.Publish(EventProductCreated, nil)
	cancel()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Zero(t, h.ClientCount())
}

func TestUpgradeOnly_RejectsPlainHTTP(t *testing.T) {
	app := fiber.New()
	app.Get("/ws", UpgradeOnly, func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

func TestHub_BroadcastReachesClientsAndDropsClosedOnes(t *testing.T) {
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go h.Run(ctx)

	app := fiber.New()
	app.Get("/ws", UpgradeOnly, h.Handler())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })

	url := "ws://" + ln.Addr().String() + "/ws"
	reader, _, err := wsclient.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer reader.Close()
	leaver, _, err := wsclient.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, leaver.Close())
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	h.Publish(EventStockChanged, map[string]int{"StockQuantity": 7})

	require.NoError(t, reader.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, raw, err := reader.ReadMessage()
	require.NoError(t, err)

	var evt struct {
		Type string         `json:"type"`
		Data map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &evt))
	assert.Equal(t, EventStockChanged, evt.Type)
	assert.Equal(t, 7, evt.Data["StockQuantity"])
	assert.Equal(t, 1, h.ClientCount())
}
