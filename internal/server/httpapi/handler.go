package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/authgate/authgate/internal/common"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,userpassword"`
	Name     string `json:"name" binding:"required"`
}

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// setAuthCookie delivers the session token. HTTP-only and SameSite=Strict
// keep it out of reach of page script; MaxAge equals the token TTL so the
// cookie and the token expire together.
func (s *Server) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(common.AuthCookieName, token, s.cookieMaxAge, "/", "", s.cookieSecure, true)
}

func (s *Server) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(common.AuthCookieName, "", -1, "/", "", s.cookieSecure, true)
}

// requestContext bounds downstream store and hashing work.
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}

// failServiceError maps service outcomes that are not operation-specific.
// Infrastructure failures surface as an opaque 500; detail stays in logs.
func (s *Server) failServiceError(c *gin.Context, err error) {
	s.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  bindingErrors(err),
		})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, err := s.users.SignUp(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"message": "User with this email already exists"})
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Validation failed",
				"errors":  []string{strings.TrimPrefix(err.Error(), common.ErrorValidation.Error()+": ")},
			})
		default:
			s.failServiceError(c, err)
		}
		return
	}

	s.setAuthCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

func (s *Server) handleSignin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  bindingErrors(err),
		})
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, err := s.users.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect email or password"})
			return
		}
		s.failServiceError(c, err)
		return
	}

	s.setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"message": "User signed in successfully"})
}

// handleLogout clears the cookie. The token itself stays valid until expiry;
// there is no server-side revocation list.
func (s *Server) handleLogout(c *gin.Context) {
	s.clearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully"})
}

// handleValidateToken reads the credential from the cookie, falling back to
// an Authorization bearer header, and verifies it. Every failure path clears
// the cookie so the client never retains a credential the server rejected.
func (s *Server) handleValidateToken(c *gin.Context) {
	token := s.extractToken(c)
	if token == "" {
		s.clearAuthCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is required"})
		return
	}

	if _, err := s.users.ValidateToken(token); err != nil {
		s.logger.Debug(c.Request.Context(), "token validation failed", "error", err.Error())
		s.clearAuthCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Valid token"})
}

func (s *Server) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(common.AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader(common.AuthHeaderName)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}

	return ""
}
