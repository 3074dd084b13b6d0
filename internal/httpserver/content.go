package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vertexit-site/internal/domain"
	"vertexit-site/internal/sitegen"
)

func (h *handlers) jobBySlug(c *gin.Context) {
	job, err := h.deps.Jobs.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// publicSettings degrades to an empty settings object when the store is
// unreachable or the singleton is missing; the marketing pages render
// with defaults rather than an error.
func (h *handlers) publicSettings(c *gin.Context) {
	s, err := h.settings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, domain.Settings{ID: domain.SettingsID})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *handlers) adminSettings(c *gin.Context) {
	s, err := h.deps.Settings.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *handlers) saveSettings(c *gin.Context) {
	var s domain.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		writeError(c, domain.Invalid("body", "malformed json"))
		return
	}
	if err := h.deps.Settings.Save(c.Request.Context(), s); err != nil {
		writeError(c, err)
		return
	}
	h.deps.Cache.Invalidate("settings")
	c.JSON(http.StatusOK, gin.H{"id": domain.SettingsID})
}

func (h *handlers) listApplications(c *gin.Context) {
	apps, err := h.deps.Applications.Fetch(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if apps == nil {
		apps = []domain.JobApplication{}
	}
	c.JSON(http.StatusOK, apps)
}

func (h *handlers) deleteApplication(c *gin.Context) {
	if err := h.deps.Applications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) pageMeta(c *gin.Context) {
	s, err := h.settings(c.Request.Context())
	if err != nil {
		s = nil
	}
	meta := sitegen.MetaFor(s, h.deps.SiteURL, c.Query("path"), c.Query("title"), c.Query("description"))
	c.JSON(http.StatusOK, meta)
}

func (h *handlers) sitemapXML(c *gin.Context) {
	if h.deps.Sitemap == nil {
		c.Status(http.StatusNotFound)
		return
	}
	entries := h.deps.Sitemap.Entries(c.Request.Context())
	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.Status(http.StatusOK)
	if err := sitegen.WriteXML(c.Writer, entries); err != nil {
		h.logger.Printf("write sitemap: %v", err)
	}
}

func (h *handlers) robotsTXT(c *gin.Context) {
	c.String(http.StatusOK, sitegen.Robots(h.deps.SiteURL))
}
