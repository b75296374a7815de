// Package server exposes the formatting operations over http and, for
// hosts that need the prompt round trip, over a websocket session.
package server

import (
	"fmt"

	. "mdgo/internal/config"
	. "mdgo/internal/logger"
	"mdgo/internal/markdown"
	. "mdgo/internal/selection"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// FormatRequest carries one stateless formatting call: the buffer, the
// selection offsets and the operation with its arguments.
type FormatRequest struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Op    string `json:"op"`

	Level    int    `json:"level,omitempty"`    // heading
	Cols     int    `json:"cols,omitempty"`     // table
	Rows     int    `json:"rows,omitempty"`     // table
	Template string `json:"template,omitempty"` // snippet
	LinkText string `json:"linktext,omitempty"` // link
	URL      string `json:"url,omitempty"`      // link
}

type FormatResponse struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Ops lists the operation names accepted by the format endpoint.
var Ops = []string{
	"bold", "italic", "strikethrough", "code", "codeblock", "spoiler",
	"quote", "bullet", "numbered", "heading", "table", "hr", "snippet",
	"link", "clear",
}

// ApplyOp runs one named operation. Over http the link operation is
// stateless: both halves arrive in the request instead of a prompt.
func ApplyOp(req FormatRequest, conf Config) (FormatResponse, error) {
	buffer := req.Text
	sel := Range(req.Start, req.End).Clamp(len(buffer))

	var newBuffer string
	var newSel Selection

	switch req.Op {
	case "bold":
		newBuffer, newSel = markdown.Bold(buffer, sel)
	case "italic":
		newBuffer, newSel = markdown.Italic(buffer, sel)
	case "strikethrough":
		newBuffer, newSel = markdown.Strikethrough(buffer, sel)
	case "code":
		newBuffer, newSel = markdown.InlineCode(buffer, sel)
	case "codeblock":
		newBuffer, newSel = markdown.CodeBlock(buffer, sel)
	case "spoiler":
		newBuffer, newSel = markdown.Spoiler(buffer, sel)
	case "quote":
		newBuffer, newSel = markdown.Quote(buffer, sel)
	case "bullet":
		newBuffer, newSel = markdown.BulletList(buffer, sel)
	case "numbered":
		newBuffer, newSel = markdown.NumberedList(buffer, sel)
	case "heading":
		level := req.Level
		if level == 0 { level = conf.Heading }
		newBuffer, newSel = markdown.Heading(buffer, sel, level)
	case "table":
		newBuffer, newSel = markdown.Table(buffer, sel, req.Cols, req.Rows)
	case "hr":
		newBuffer, newSel = markdown.HorizontalRule(buffer, sel)
	case "snippet":
		newBuffer, newSel = markdown.Snippet(buffer, sel, req.Template)
	case "link":
		if req.URL == "" {
			return FormatResponse{}, fmt.Errorf("link needs a url")
		}
		text := req.LinkText
		if text == "" { text = "link text" }
		start, end := sel.Normalize()
		md := markdown.Link(text, req.URL)
		newBuffer = ReplaceRange(buffer, start, end, md)
		newSel = Range(start, start+len(md))
	case "clear":
		newBuffer, newSel = markdown.ClearFormatting(buffer, sel)
	default:
		return FormatResponse{}, fmt.Errorf("unknown operation %q", req.Op)
	}

	newSel = newSel.Clamp(len(newBuffer))
	start, end := newSel.Normalize()
	return FormatResponse{Text: newBuffer, Start: start, End: end}, nil
}

func New(conf Config) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	app.Get("/api/ops", func(c *fiber.Ctx) error {
		return c.JSON(Ops)
	})

	app.Get("/api/config", func(c *fiber.Ctx) error {
		return c.JSON(conf)
	})

	app.Post("/api/format", func(c *fiber.Ctx) error {
		var req FormatRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		resp, err := ApplyOp(req, conf)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		Log.Info("format", req.Op)
		return c.JSON(resp)
	})

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) { return c.Next() }
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		RunSession(conn, conf)
	}))

	return app
}

func Start(conf Config) error {
	Log.Info("serving on", conf.Listen)
	return New(conf).Listen(conf.Listen)
}
