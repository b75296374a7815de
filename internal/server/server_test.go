package server

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	. "mdgo/internal/config"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestApplyOp(t *testing.T) {
	conf := DefaultConfig

	tests := []struct {
		name      string
		req       FormatRequest
		wantText  string
		wantStart int
		wantEnd   int
	}{
		{
			name:     "bold",
			req:      FormatRequest{Text: "say hello now", Start: 4, End: 9, Op: "bold"},
			wantText: "say **hello** now", wantStart: 6, wantEnd: 11,
		},
		{
			name:     "numbered",
			req:      FormatRequest{Text: "a\nb\nc", Start: 0, End: 5, Op: "numbered"},
			wantText: "1. a\n2. b\n3. c", wantStart: 0, wantEnd: 14,
		},
		{
			name:     "heading uses config default",
			req:      FormatRequest{Text: "title", Start: 0, End: 5, Op: "heading"},
			wantText: "### title", wantStart: 0, wantEnd: 9,
		},
		{
			name:     "heading explicit level",
			req:      FormatRequest{Text: "title", Start: 0, End: 5, Op: "heading", Level: 1},
			wantText: "# title", wantStart: 0, wantEnd: 7,
		},
		{
			name:     "stateless link",
			req:      FormatRequest{Text: "here", Start: 0, End: 4, Op: "link", URL: "http://e"},
			wantText: "[here](http://e)", wantStart: 0, wantEnd: 16,
		},
		{
			name:     "clear",
			req:      FormatRequest{Text: "**x**", Start: 0, End: 5, Op: "clear"},
			wantText: "x", wantStart: 0, wantEnd: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := ApplyOp(tc.req, conf)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantText, resp.Text)
			assert.Equal(t, tc.wantStart, resp.Start)
			assert.Equal(t, tc.wantEnd, resp.End)
		})
	}
}

func TestApplyOpErrors(t *testing.T) {
	_, err := ApplyOp(FormatRequest{Text: "x", Op: "nope"}, DefaultConfig)
	assert.Error(t, err)

	_, err = ApplyOp(FormatRequest{Text: "x", Op: "link"}, DefaultConfig)
	assert.Error(t, err) // link without url
}

func TestApplyOpClampsOffsets(t *testing.T) {
	resp, err := ApplyOp(FormatRequest{Text: "ab", Start: -5, End: 99, Op: "bold"}, DefaultConfig)
	assert.NoError(t, err)
	assert.Equal(t, "**ab**", resp.Text)
	assert.True(t, resp.Start >= 0 && resp.End <= len(resp.Text))
}

func TestFormatEndpoint(t *testing.T) {
	app := New(DefaultConfig)

	body, _ := json.Marshal(FormatRequest{Text: "hi", Start: 0, End: 2, Op: "italic"})
	req := httptest.NewRequest("POST", "/api/format", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	data, _ := io.ReadAll(res.Body)
	var resp FormatResponse
	assert.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, "*hi*", resp.Text)
}

func TestOpsEndpoint(t *testing.T) {
	app := New(DefaultConfig)

	res, err := app.Test(httptest.NewRequest("GET", "/api/ops", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	data, _ := io.ReadAll(res.Body)
	var ops []string
	assert.NoError(t, json.Unmarshal(data, &ops))
	assert.Contains(t, ops, "bold")
	assert.Contains(t, ops, "clear")
}

func TestFormatEndpointRejectsUnknownOp(t *testing.T) {
	app := New(DefaultConfig)

	body, _ := json.Marshal(FormatRequest{Text: "hi", Op: "nope"})
	req := httptest.NewRequest("POST", "/api/format", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)
}
