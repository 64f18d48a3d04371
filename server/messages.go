package server

import (
	"github.com/katalvlaran/flowgrid/grid"
	"github.com/katalvlaran/flowgrid/puzzle"
	"github.com/katalvlaran/flowgrid/router"
	"github.com/katalvlaran/flowgrid/search"
)

// Message types streamed to a websocket client.
const (
	MsgPuzzle  = "puzzle"
	MsgTrace   = "trace"
	MsgPath    = "path"
	MsgAborted = "aborted"
	MsgDone    = "done"
)

// Message is one JSON frame on the solve stream.
type Message struct {
	Type   string          `json:"type"`
	Index  int             `json:"index"`
	Pair   *router.Pair    `json:"pair,omitempty"`
	Cells  []grid.Position `json:"cells,omitempty"`
	Puzzle *puzzle.Puzzle  `json:"puzzle,omitempty"`
	Solved int             `json:"solved,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// collector is a router.Sink that buffers every event as a Message so the
// whole run is materialized before anything is written to the client.
type collector struct {
	msgs []Message
}

func (c *collector) Searched(index int, p router.Pair, trace search.Trace) {
	pair := p
	c.msgs = append(c.msgs, Message{Type: MsgTrace, Index: index, Pair: &pair, Cells: trace})
}

func (c *collector) Committed(index int, p router.Pair, path grid.Path) {
	pair := p
	c.msgs = append(c.msgs, Message{Type: MsgPath, Index: index, Pair: &pair, Cells: path})
}

func (c *collector) Aborted(index int, p router.Pair, trace search.Trace, err error) {
	pair := p
	c.msgs = append(c.msgs,
		Message{Type: MsgTrace, Index: index, Pair: &pair, Cells: trace},
		Message{Type: MsgAborted, Index: index, Pair: &pair, Error: err.Error()},
	)
}
