package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/asadc0de/husnainatelier/internal/http/middleware"
	"github.com/asadc0de/husnainatelier/internal/http/validation"
	"github.com/asadc0de/husnainatelier/internal/shared/apperr"
)

// AuthHandler is the single-admin console gate: one password, checked
// against a bcrypt hash from the environment, kept in the cookie session.
type AuthHandler struct {
	passwordHash []byte
}

func NewAuthHandler(passwordHash string) *AuthHandler {
	return &AuthHandler{passwordHash: []byte(passwordHash)}
}

type loginInput struct {
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Password is required.", validation.FromBindError(err, &in)))
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(in.Password)); err != nil {
		middleware.Fail(c, apperr.UnauthorizedErr("Wrong password."))
		return
	}

	if err := middleware.SetAdmin(c, true); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": true})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.SetAdmin(c, false); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": false})
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"admin": middleware.IsAdmin(c)})
}
