package server

import (
	"fmt"

	. "mdgo/internal/config"
	"mdgo/internal/formatter"
	. "mdgo/internal/logger"
	. "mdgo/internal/selection"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/websocket"
)

// Message is the websocket frame in both directions.
//
// client to server: sync, op, answer, cancel
// server to client: commit, prompt, error
type Message struct {
	Type string `json:"type"`

	Text  string `json:"text,omitempty"`
	Start int    `json:"start,omitempty"`
	End   int    `json:"end,omitempty"`

	Op    string `json:"op,omitempty"`
	Level int    `json:"level,omitempty"`
	Cols  int    `json:"cols,omitempty"`
	Rows  int    `json:"rows,omitempty"`
	Index int    `json:"index,omitempty"`

	Message string `json:"message,omitempty"`
	Default string `json:"default,omitempty"`
	Value   string `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
}

// session is the websocket side of the engine collaborators: the
// client mirrors a text area, the session relays buffer state and
// prompt round trips.
type session struct {
	conn *websocket.Conn

	text string
	sel  Selection

	pendingPrompt func(answer *string)
}

func (s *session) Buffer() (string, Selection) { return s.text, s.sel }

func (s *session) Commit(buffer string, sel Selection) {
	s.text = buffer
	s.sel = sel
	start, end := sel.Normalize()
	s.send(Message{Type: "commit", Text: buffer, Start: start, End: end})
}

func (s *session) Prompt(message, defaultValue string, onResult func(answer *string)) {
	s.pendingPrompt = onResult
	s.send(Message{Type: "prompt", Message: message, Default: defaultValue})
}

func (s *session) send(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil { Log.Error("ws marshal:", err.Error()); return }
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		Log.Error("ws write:", err.Error())
	}
}

func (s *session) sendError(err error) {
	s.send(Message{Type: "error", Error: err.Error()})
}

// RunSession reads frames until the client goes away. The read loop is
// the only goroutine touching the session, so one operation at a time
// is guaranteed by construction.
func RunSession(conn *websocket.Conn, conf Config) {
	s := &session{conn: conn}
	f := formatter.New(s, s, conf)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil { return }

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError(err)
			continue
		}

		switch msg.Type {
		case "sync":
			s.text = msg.Text
			s.sel = Range(msg.Start, msg.End).Clamp(len(msg.Text))

		case "op":
			if err := dispatch(f, msg); err != nil {
				s.sendError(err)
			}

		case "answer":
			s.resolvePrompt(&msg.Value)

		case "cancel":
			s.resolvePrompt(nil)
		}
	}
}

func (s *session) resolvePrompt(answer *string) {
	callback := s.pendingPrompt
	if callback == nil { return }
	s.pendingPrompt = nil
	callback(answer)
}

func dispatch(f *formatter.Formatter, msg Message) error {
	switch msg.Op {
	case "bold":
		return f.Bold()
	case "italic":
		return f.Italic()
	case "strikethrough":
		return f.Strikethrough()
	case "code":
		return f.InlineCode()
	case "codeblock":
		return f.CodeBlock()
	case "spoiler":
		return f.Spoiler()
	case "quote":
		return f.Quote()
	case "bullet":
		return f.BulletList()
	case "numbered":
		return f.NumberedList()
	case "heading":
		return f.Heading()
	case "table":
		return f.Table(msg.Cols, msg.Rows)
	case "hr":
		return f.HorizontalRule()
	case "snippet":
		return f.Snippet(msg.Index)
	case "link":
		return f.Link()
	case "clear":
		return f.ClearFormatting()
	}
	return fmt.Errorf("unknown operation %q", msg.Op)
}
