// Package server exposes the router over HTTP. A websocket client asks for a
// generated puzzle and receives, per pair, the visited trace and the final
// path; the client replays them at its own pace.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowgrid/grid"
	"github.com/katalvlaran/flowgrid/puzzle"
	"github.com/katalvlaran/flowgrid/router"
	"github.com/katalvlaran/flowgrid/search"
)

// Routes.
const (
	URIHealth    = "/healthz"
	URISolve     = "/solve/:method"
	URIReachable = "/reachable"
)

// MaxCells bounds the board size a client may request.
const MaxCells = 100 * 100

// ErrBadRequest marks invalid query parameters.
var ErrBadRequest = errors.New("server: bad request")

// Server routes HTTP requests. Every solve request gets its own grid and
// router, so connections share no state.
type Server struct {
	router   *way.Router
	upgrader websocket.Upgrader
	log      logrus.FieldLogger
	now      func() time.Time
}

// New returns a Server with its routes registered.
func New(log logrus.FieldLogger) *Server {
	s := &Server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		log: log,
		now: time.Now,
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc(http.MethodGet, URIHealth, s.handleHealth())
	s.router.HandleFunc(http.MethodGet, URISolve, s.handleSolve())
	s.router.HandleFunc(http.MethodGet, URIReachable, s.handleReachable())
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}
}

// handleSolve generates a puzzle from the query (width, height, pairs, seed),
// routes it with the method from the path and streams the result.
func (s *Server) handleSolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		method, err := search.ParseMethod(way.Param(r.Context(), "method"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		q := r.URL.Query()
		width, err1 := intParam(q.Get("width"), 5)
		height, err2 := intParam(q.Get("height"), 5)
		n, err3 := intParam(q.Get("pairs"), 3)
		seed, err4 := int64Param(q.Get("seed"), s.now().UnixNano())
		if err := errors.Join(err1, err2, err3, err4); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := checkSize(width, height); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if n > MaxCells {
			http.Error(w, fmt.Sprintf("%v: more than %d pairs", ErrBadRequest, MaxCells), http.StatusBadRequest)
			return
		}
		pz, err := puzzle.Generate(width, height, n, rand.New(rand.NewSource(seed)))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		pz.Method = method

		log := s.log.WithFields(logrus.Fields{
			"remote": r.RemoteAddr,
			"method": method.String(),
			"seed":   seed,
		})
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Warn("websocket upgrade failed")
			return
		}
		defer conn.Close()

		msgs, err := s.solve(r, pz, log)
		if err != nil {
			log.WithError(err).Error("solve failed")
			_ = conn.WriteJSON(Message{Type: MsgAborted, Error: err.Error()})
			return
		}
		for _, m := range msgs {
			if err := conn.WriteJSON(m); err != nil {
				log.WithError(err).Info("client went away")
				return
			}
		}
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
}

// solve runs pz to completion and returns every message to stream, puzzle
// first and done last. An aborted run still ends with a done frame.
func (s *Server) solve(r *http.Request, pz *puzzle.Puzzle, log logrus.FieldLogger) ([]Message, error) {
	c := &collector{}
	rt, err := pz.Router(router.WithSink(c), router.WithLogger(log))
	if err != nil {
		return nil, err
	}
	res, err := rt.Run(r.Context())
	var uerr *router.UnsolvableError
	if err != nil && !errors.As(err, &uerr) {
		return nil, err
	}

	msgs := make([]Message, 0, len(c.msgs)+2)
	msgs = append(msgs, Message{Type: MsgPuzzle, Puzzle: pz})
	msgs = append(msgs, c.msgs...)
	msgs = append(msgs, Message{Type: MsgDone, Solved: len(res.Solutions)})

	return msgs, nil
}

// reachableResponse is the JSON body of /reachable.
type reachableResponse struct {
	Reachable bool `json:"reachable"`
}

// handleReachable answers IsReachable on a width×height board with the
// cells listed in blocked ("x:y,x:y") blocked.
func (s *Server) handleReachable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		width, err1 := intParam(q.Get("width"), 5)
		height, err2 := intParam(q.Get("height"), 5)
		sx, err3 := intParam(q.Get("sx"), 0)
		sy, err4 := intParam(q.Get("sy"), 0)
		ex, err5 := intParam(q.Get("ex"), 0)
		ey, err6 := intParam(q.Get("ey"), 0)
		blocked, err7 := parseCells(q.Get("blocked"))
		if err := errors.Join(err1, err2, err3, err4, err5, err6, err7); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := checkSize(width, height); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		g, err := grid.New(width, height)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		for _, p := range blocked {
			if err := g.SetBlocked(p, true); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		e, err := search.New(g)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		ok, err := e.IsReachable(grid.Pos(sx, sy), grid.Pos(ex, ey))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reachableResponse{Reachable: ok}); err != nil {
			s.log.WithError(err).Warn("encode reachable response")
		}
	}
}

// checkSize rejects boards above MaxCells without multiplying first, so huge
// dimensions cannot wrap around. Non-positive sizes are left to grid.New.
func checkSize(width, height int) error {
	if width > MaxCells || height > MaxCells || (width > 0 && height > 0 && width*height > MaxCells) {
		return fmt.Errorf("%w: board larger than %d cells", ErrBadRequest, MaxCells)
	}

	return nil
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadRequest, v)
	}

	return n, nil
}

func int64Param(v string, def int64) (int64, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadRequest, v)
	}

	return n, nil
}

// parseCells reads "x:y,x:y" into positions; empty input yields none.
func parseCells(v string) ([]grid.Position, error) {
	if v == "" {
		return nil, nil
	}
	var out []grid.Position
	for _, part := range strings.Split(v, ",") {
		xs, ys, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: cell %q must be x:y", ErrBadRequest, part)
		}
		x, err := strconv.Atoi(xs)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %q must be x:y", ErrBadRequest, part)
		}
		y, err := strconv.Atoi(ys)
		if err != nil {
			return nil, fmt.Errorf("%w: cell %q must be x:y", ErrBadRequest, part)
		}
		out = append(out, grid.Pos(x, y))
	}

	return out, nil
}
