package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Handlers holds the dependencies for the API endpoints.
type Handlers struct {
	browser     *Browser
	profilePath string
}

// NewHandlers builds the endpoint set over a browser and the analysis output
// location.
func NewHandlers(browser *Browser, profilePath string) *Handlers {
	return &Handlers{browser: browser, profilePath: profilePath}
}

// GetOverview handles GET /api/overview.
func (h *Handlers) GetOverview(c *gin.Context) {
	overview, err := h.browser.Overview()
	if err != nil {
		slog.Error("[API] Overview failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read export"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": overview})
}

// GetCategory handles GET /api/category/:name.
func (h *Handlers) GetCategory(c *gin.Context) {
	info, files, err := h.browser.Category(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": info, "files": files})
}

// GetFile handles GET /api/file/*path.
func (h *Handlers) GetFile(c *gin.Context) {
	content, err := h.browser.FileContent(c.Param("path"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// Search handles GET /api/search.
func (h *Handlers) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"query": query, "results": h.browser.Search(query)})
}

// GetProfile handles GET /api/profile, serving the latest analysis output.
func (h *Handlers) GetProfile(c *gin.Context) {
	raw, err := os.ReadFile(h.profilePath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no analysis results yet"})
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
