package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"vertexit-site/internal/domain"
	"vertexit-site/internal/identity"
)

const sessionCookie = "admin_session"

// principalKey is the gin context key the gate stores the verified
// principal under.
const principalKey = "principal"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, domain.Invalid("body", "malformed json"))
		return
	}
	if !h.limiter.allow(c.ClientIP()) {
		writeError(c, identity.ErrTooManyAttempts)
		return
	}

	principal, token, err := h.deps.Provider.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	// Optimistic update so the session reads as signed-in immediately,
	// before the provider's own change event lands.
	h.deps.Sessions.SetPrincipal(principal)

	maxAge := int(h.deps.SessionTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"principal": principal, "token": token})
}

func (h *handlers) logout(c *gin.Context) {
	token := requestToken(c)
	if token != "" {
		if err := h.deps.Provider.SignOut(c.Request.Context(), token); err != nil {
			h.logger.Printf("sign out: %v", err)
		}
	}
	h.deps.Sessions.SetPrincipal(nil)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (h *handlers) session(c *gin.Context) {
	token := requestToken(c)
	if token == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	principal, err := h.deps.Provider.Verify(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "principal": principal})
}

// adminGate protects the admin routes. The session store is initialized
// lazily on the first admin request; while it is still waiting on the
// identity provider the gate answers 503 with a Retry-After rather than
// guessing at the session state.
func (h *handlers) adminGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.deps.Sessions.Initialize()
		if h.deps.Sessions.IsLoading() {
			c.Header("Retry-After", strconv.Itoa(1))
			fail(c, http.StatusServiceUnavailable, "session_loading", "session state not yet known")
			return
		}

		token := requestToken(c)
		if token == "" {
			h.reject(c)
			return
		}
		principal, err := h.deps.Provider.Verify(c.Request.Context(), token)
		if err != nil {
			h.reject(c)
			return
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// reject sends browsers to the login page and gives API clients a 401.
func (h *handlers) reject(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusSeeOther, h.deps.AdminLoginPath)
		c.Abort()
		return
	}
	fail(c, http.StatusUnauthorized, "unauthorized", "sign in required")
}

func requestToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		return cookie
	}
	return ""
}
