package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishNilHub(t *testing.T) {
	var h *Hub
	assert.NotPanics(t, func() {
		h.Publish(Event{Type: "stock_update"})
	})
}

func TestPublishQueuesEncodedEvent(t *testing.T) {
	h := NewHub()
	h.Publish(Event{
		Type:   "order_update",
		Action: "order_created",
		Data:   map[string]int{"items": 2},
		User:   &EventUser{ID: "u1", Name: "Asha"},
	})

	select {
	case msg := <-h.Broadcast:
		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(msg, &got))
		assert.Equal(t, "order_update", got["type"])
		assert.Equal(t, "order_created", got["action"])
		assert.Equal(t, "Asha", got["user"].(map[string]interface{})["name"])
	case <-time.After(time.Second):
		t.Fatal("event was not broadcast")
	}
}
