package tui

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"
)

// Messages delivered into the bubbletea event loop.

type connectedMsg struct{}

type disconnectedMsg struct {
	err error
}

type pointerMsg struct {
	X       float64
	Y       float64
	Pinch   bool
	HasHand bool
}

type bindingsMsg struct {
	rows []bindingRow
}

type bindingsErrMsg struct {
	err error
}

// streamClient owns the websocket connection to the daemon's pointer
// stream. Reads happen inside tea.Cmd closures so the event loop stays
// single-threaded.
type streamClient struct {
	addr string
	conn *websocket.Conn
}

func newStreamClient(addr string) *streamClient {
	return &streamClient{addr: addr}
}

// connect dials the pointer stream. On success the model should issue
// readNext to start pumping updates.
func (c *streamClient) connect() tea.Cmd {
	return func() tea.Msg {
		url := fmt.Sprintf("ws://%s/api/pointer/ws", c.addr)
		conn, _, err := websocket.DefaultDialer.Dial(url, nil)
		if err != nil {
			return disconnectedMsg{err: err}
		}
		c.conn = conn
		return connectedMsg{}
	}
}

// readNext blocks on the next websocket frame and converts it to a
// pointerMsg.
func (c *streamClient) readNext() tea.Cmd {
	return func() tea.Msg {
		if c.conn == nil {
			return disconnectedMsg{err: fmt.Errorf("not connected")}
		}

		var frame struct {
			Pointer *struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"pointer"`
			Pinch bool `json:"pinch"`
		}
		if err := c.conn.ReadJSON(&frame); err != nil {
			c.conn.Close()
			c.conn = nil
			return disconnectedMsg{err: err}
		}

		msg := pointerMsg{Pinch: frame.Pinch}
		if frame.Pointer != nil {
			msg.HasHand = true
			msg.X = frame.Pointer.X
			msg.Y = frame.Pointer.Y
		}
		return msg
	}
}

// reconnect waits briefly before dialing again.
func (c *streamClient) reconnect() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return c.connect()()
	})
}

func (c *streamClient) close() {
	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

// fetchBindings polls the bindings API once.
func fetchBindings(addr string) tea.Cmd {
	return func() tea.Msg {
		url := fmt.Sprintf("http://%s/api/bindings", addr)
		resp, err := http.Get(url)
		if err != nil {
			return bindingsErrMsg{err: err}
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return bindingsErrMsg{err: fmt.Errorf("bindings: status %d", resp.StatusCode)}
		}

		var payload struct {
			Bindings []struct {
				ID     string `json:"id"`
				Name   string `json:"name"`
				Kind   string `json:"kind"`
				Region struct {
					X      float64 `json:"x"`
					Y      float64 `json:"y"`
					Width  float64 `json:"width"`
					Height float64 `json:"height"`
				} `json:"region"`
			} `json:"bindings"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return bindingsErrMsg{err: err}
		}

		rows := make([]bindingRow, 0, len(payload.Bindings))
		for _, b := range payload.Bindings {
			rows = append(rows, bindingRow{
				ID:   b.ID,
				Name: b.Name,
				Kind: b.Kind,
				Region: fmt.Sprintf("%.0f,%.0f %gx%g",
					b.Region.X, b.Region.Y, b.Region.Width, b.Region.Height),
			})
		}
		return bindingsMsg{rows: rows}
	}
}
