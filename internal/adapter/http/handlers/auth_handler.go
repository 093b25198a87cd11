package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"

	"doorway_ops/internal/adapter/http/dto/request"
	"doorway_ops/pkg"

	"github.com/gin-gonic/gin"
)

const (
	adminSessionCookie = "doorway_admin"
	sessionMaxAge      = 12 * 60 * 60
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// AuthHandler implements the single-operator admin login. There are no
// user accounts: one shared secret gates the whole admin surface, and a
// session cookie derived from it keeps the browser logged in.

type AuthHandler struct {
	secret string
}

func NewAuthHandler(adminSecret string) *AuthHandler {
	if adminSecret == "" {
		log.Printf("[auth][handler] ADMIN_SECRET is empty; admin login disabled")
	}
	return &AuthHandler{secret: adminSecret}
}

// Login godoc
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      request.LoginRequest  true  "Admin secret"
// @Success      200          {object}  map[string]string
// @Failure      401          {object}  pkg.HTTPError
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	if h.secret == "" || !hmac.Equal([]byte(payload.Password), []byte(h.secret)) {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminSessionCookie, sessionToken(h.secret), sessionMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Logout godoc
// @Summary      Admin logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(adminSessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RequireAdmin guards the admin route group. Failures answer with the
// same JSON error shape as the rest of the API, not a redirect.
func (h *AuthHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.secret == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		cookie, err := c.Cookie(adminSessionCookie)
		if err != nil || !hmac.Equal([]byte(cookie), []byte(sessionToken(h.secret))) {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}

// sessionToken derives the cookie value from the admin secret so the
// secret itself never travels back to the browser.
func sessionToken(secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte("doorway-admin-session"))
	return hex.EncodeToString(mac.Sum(nil))
}
