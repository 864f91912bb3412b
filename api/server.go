package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"ainews/types"
)

// Runner produces the combined entry list for a look-back window.
type Runner interface {
	Run(ctx context.Context, hours int) []types.Entry
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(runner Runner) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterEntryRoutes(r, runner)
	return r
}
