package transport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

func dialTestServer(t *testing.T, handler func(*websocket.Conn)) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error("upgrade:", err)
			return
		}
		defer c.Close()
		handler(c)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketFramedRoundTrip(t *testing.T) {
	conn := dialTestServer(t, func(c *websocket.Conn) {
		for {
			typ, data, err := c.ReadMessage()
			if err != nil {
				return
			}
			if err := c.WriteMessage(typ, data); err != nil {
				return
			}
		}
	})

	trans := NewFramed(NewWebSocket(conn))
	payload := "ping over websocket"
	if _, err := trans.Write([]byte(payload)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := trans.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	got, err := Read(trans, len(payload))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != payload {
		t.Fatalf("got %q, want %q", got, payload)
	}
}

// Message boundaries on the wire are invisible to the byte stream: two
// binary messages read back as one contiguous sequence.
func TestWebSocketStitchesMessages(t *testing.T) {
	conn := dialTestServer(t, func(c *websocket.Conn) {
		for _, m := range []string{"abc", "def"} {
			if err := c.WriteMessage(websocket.BinaryMessage, []byte(m)); err != nil {
				return
			}
		}
		// Keep the connection up until the client is done.
		_, _, _ = c.ReadMessage()
	})

	got, err := Read(NewWebSocket(conn), 6)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "abcdef" {
		t.Fatalf("got %q, want %q", got, "abcdef")
	}
}

func TestWebSocketPeerCloseIsEndOfFile(t *testing.T) {
	conn := dialTestServer(t, func(c *websocket.Conn) {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	})

	if _, err := Read(NewWebSocket(conn), 1); !IsEndOfFile(err) {
		t.Fatalf("want end-of-file kind, got %v", err)
	}
}
