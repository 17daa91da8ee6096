// Package transport
package transport

import (
	"io"

	"github.com/gorilla/websocket"
)

// NewWebSocket adapts a websocket connection into a transport. Binary
// messages from the peer are consumed as chunks of one byte stream, and each
// Write becomes one binary message, so it pairs naturally with a framed or
// buffered decorator on top. A normal close from the peer reads as end of
// file.
func NewWebSocket(c *websocket.Conn) Transport {
	return NewIO(&wsConn{conn: c})
}

type wsConn struct {
	conn   *websocket.Conn
	reader io.Reader
}

func (ws *wsConn) Read(p []byte) (int, error) {
	for {
		if ws.reader == nil {
			typ, r, err := ws.conn.NextReader()
			if err != nil {
				if websocket.IsCloseError(err,
					websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return 0, io.EOF
				}
				return 0, err
			}
			if typ == websocket.CloseMessage {
				return 0, io.EOF
			}
			ws.reader = r
		}

		n, err := ws.reader.Read(p)
		if err == io.EOF {
			// Message drained; pull the next one rather than report a
			// zero-byte read.
			ws.reader = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

func (ws *wsConn) Write(p []byte) (int, error) {
	err := ws.conn.WriteMessage(websocket.BinaryMessage, p)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (ws *wsConn) Close() error {
	return ws.conn.Close()
}
