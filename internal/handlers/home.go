package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var indexPage []byte

// Home serves the search form. The page submits to the JSON API and
// renders the two analysis sections client-side.
func Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}
