// Package http is the ambient HTTP transport: a thin Gin layer over
// internal/facade, exercising the teacher's own domain dependency
// (github.com/gin-gonic/gin) the way its own routes.go does — one
// handler per operation, gin.H{...} JSON responses — but generalized
// from stateless request/JWT-session handlers into handlers that load
// or create a persistent *facade.Game keyed by an in-memory session id
// (the teacher's SessionToken in token.go is superseded by this, since
// the facade already is the stateful game object the teacher's
// stateless API never had; see DESIGN.md).
package http

import (
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"github.com/jrm-1535/sudoku-lib-sub000/internal/facade"
	"github.com/jrm-1535/sudoku-lib-sub000/internal/grid"
	"github.com/jrm-1535/sudoku-lib-sub000/pkg/config"
	"github.com/jrm-1535/sudoku-lib-sub000/pkg/constants"
)

// sessions holds one *facade.Game per in-progress game, keyed by a
// monotonically increasing id. Grounded on the teacher's loader.go
// singleton idiom (package-level state guarded by sync.RWMutex)
// generalized from a read-only puzzle bank to a mutable session table.
type sessions struct {
	mu    sync.RWMutex
	games map[string]*facade.Game
	next  int64
}

func newSessions() *sessions {
	return &sessions{games: make(map[string]*facade.Game)}
}

func (s *sessions) create() (string, *facade.Game) {
	id := genID(&s.next)
	g := facade.New(facade.UICallbacks{})
	s.mu.Lock()
	s.games[id] = g
	s.mu.Unlock()
	return id, g
}

func (s *sessions) get(id string) (*facade.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.games[id]
	return g, ok
}

func genID(counter *int64) string {
	n := atomic.AddInt64(counter, 1)
	return "g" + strconv.FormatInt(n, 10)
}

// RegisterRoutes wires every facade operation the ambient HTTP surface
// exercises onto r.
func RegisterRoutes(r *gin.Engine, cfg *config.Config) {
	s := newSessions()

	r.GET("/health", healthHandler)

	api := r.Group("/api/game")
	{
		api.POST("/random", s.randomHandler(cfg))
		api.GET("/:id", s.withGame(getGridHandler))
		api.POST("/:id/select", s.withGame(selectHandler))
		api.POST("/:id/enter", s.withGame(enterSymbolHandler))
		api.POST("/:id/erase", s.withGame(eraseHandler))
		api.POST("/:id/undo", s.withGame(undoHandler))
		api.POST("/:id/redo", s.withGame(redoHandler))
		api.POST("/:id/hint", s.withGame(hintHandler))
		api.POST("/:id/step", s.withGame(stepHandler))
		api.POST("/:id/check", s.withGame(checkHandler))
		api.POST("/:id/solve", s.withGame(solveHandler))
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": constants.APIVersion})
}

func (s *sessions) randomHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Seed *int64 `json:"seed"`
		}
		_ = c.ShouldBindJSON(&body)
		if body.Seed == nil {
			body.Seed = cfg.RNGSeed
		}

		id, g := s.create()
		if err := g.RandomGame(body.Seed); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "grid": gridView(g.Grid()), "duration_seconds": g.PlayDuration()})
	}
}

// withGame resolves the ":id" path parameter into a *facade.Game
// before calling next, returning 404 if the session does not exist.
func (s *sessions) withGame(next func(*gin.Context, *facade.Game)) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, ok := s.get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown game id"})
			return
		}
		next(c, g)
	}
}

func getGridHandler(c *gin.Context, g *facade.Game) {
	c.JSON(http.StatusOK, gin.H{"grid": gridView(g.Grid()), "duration_seconds": g.PlayDuration()})
}

func selectHandler(c *gin.Context, g *facade.Game) {
	var body struct{ Row, Col int }
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.SetSelection(body.Row, body.Col); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grid": gridView(g.Grid()), "duration_seconds": g.PlayDuration()})
}

func enterSymbolHandler(c *gin.Context, g *facade.Game) {
	var body struct{ Symbol int }
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := g.EnterSymbol(body.Symbol); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grid": gridView(g.Grid()), "duration_seconds": g.PlayDuration()})
}

func eraseHandler(c *gin.Context, g *facade.Game) {
	if err := g.EraseSelection(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grid": gridView(g.Grid()), "duration_seconds": g.PlayDuration()})
}

func undoHandler(c *gin.Context, g *facade.Game) {
	if err := g.Undo(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grid": gridView(g.Grid()), "duration_seconds": g.PlayDuration()})
}

func redoHandler(c *gin.Context, g *facade.Game) {
	if err := g.Redo(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grid": gridView(g.Grid()), "duration_seconds": g.PlayDuration()})
}

func hintHandler(c *gin.Context, g *facade.Game) {
	d, err := g.Hint()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if d == nil {
		c.JSON(http.StatusOK, gin.H{"hint": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hint": gin.H{
		"kind":   d.Kind.String(),
		"action": int(d.Action),
	}})
}

func stepHandler(c *gin.Context, g *facade.Game) {
	if err := g.Step(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grid": gridView(g.Grid()), "duration_seconds": g.PlayDuration()})
}

func checkHandler(c *gin.Context, g *facade.Game) {
	result, err := g.CheckFromCurrentPosition()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": int(result)})
}

func solveHandler(c *gin.Context, g *facade.Game) {
	if err := g.SolveFromCurrentPosition(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"grid": gridView(g.Grid()), "duration_seconds": g.PlayDuration()})
}

// cellView is the wire representation of one cell (spec.md §5's
// "cell_definition(r,c) -> CellView" contract).
type cellView struct {
	Row        int   `json:"row"`
	Col        int   `json:"col"`
	Symbol     int   `json:"symbol,omitempty"`
	Candidates []int `json:"candidates,omitempty"`
	Given      bool  `json:"given"`
}

func gridView(g *grid.Grid) []cellView {
	out := make([]cellView, 0, grid.TotalCells)
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			cell := g.Cell(r, c)
			v := cellView{Row: r, Col: c, Given: cell.State&grid.Given != 0}
			if sym, ok := cell.Symbol(); ok {
				v.Symbol = sym
			} else {
				v.Candidates = cell.Candidates.ToSlice()
			}
			out = append(out, v)
		}
	}
	return out
}
