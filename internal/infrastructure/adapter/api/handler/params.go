package handler

import (
	"fmt"
	"strconv"

	domainerr "github.com/amirhossein-jamali/community-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/community-ledger/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// pathID parses a positive integer path parameter
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		_ = c.Error(fmt.Errorf("%w: %s must be a positive integer", domainerr.ErrInvalidID, name))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body or records a validation error
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		_ = c.Error(fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, err.Error()))
		return false
	}
	return true
}

// actorID returns the authenticated caller
func actorID(c *gin.Context) (uint64, bool) {
	id, ok := coreport.ActorIDFromContext(c.Request.Context())
	if !ok {
		_ = c.Error(domainerr.ErrUnauthenticated)
	}
	return id, ok
}
