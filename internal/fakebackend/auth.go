package fakebackend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"wardrobe-planner/internal/model"
	"wardrobe-planner/pkg/response"
)

const userKey = "fakebackend.user"

type credentials struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// MintToken signs a bearer token for userID valid for ttl from now. A
// negative ttl yields an already expired token.
func (srv *Server) MintToken(userID model.ID, ttl time.Duration) (string, error) {
	now := srv.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(srv.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (srv *Server) parseToken(tok string) (model.ID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return srv.secret, nil
	}, jwt.WithTimeFunc(srv.now))
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return model.ID(claims.Subject), nil
}

func (srv *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tok, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tok == "" {
			response.Unauthorized(c, "")
			return
		}

		id, err := srv.parseToken(tok)
		if err != nil {
			srv.l.Debugf(c.Request.Context(), "fakebackend.requireUser: %v", err)
			response.Unauthorized(c, response.MessageInvalidToken)
			return
		}

		srv.data.mu.Lock()
		acc, found := srv.data.accountByID(id)
		srv.data.mu.Unlock()
		if !found {
			response.Unauthorized(c, response.MessageInvalidToken)
			return
		}
		c.Set(userKey, acc.user)
		c.Next()
	}
}

func currentUser(c *gin.Context) model.User {
	return c.MustGet(userKey).(model.User)
}

func (srv *Server) register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	var missing []response.FieldError
	for field, v := range map[string]string{"username": req.Username, "email": req.Email, "password": req.Password} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, response.FieldError{Loc: []string{"body", field}, Msg: "field required", Type: "value_error.missing"})
		}
	}
	if len(missing) > 0 {
		response.Validation(c, missing...)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	srv.data.mu.Lock()
	if _, taken := srv.data.accounts[req.Username]; taken {
		srv.data.mu.Unlock()
		response.Error(c, http.StatusBadRequest, errors.New("Username already registered"))
		return
	}
	now := model.NewTime(srv.now())
	user := model.User{ID: srv.data.nextID(), Username: req.Username, Email: req.Email, CreatedAt: now, UpdatedAt: now}
	srv.data.accounts[req.Username] = &account{user: user, password: hash}
	srv.data.mu.Unlock()

	if !srv.tokenOnRegister {
		response.OK(c, user)
		return
	}
	tok, err := srv.MintToken(user.ID, srv.ttl)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, struct {
		model.User
		tokenResponse
	}{user, tokenResponse{AccessToken: tok, TokenType: "bearer"}})
}

// login accepts JSON or an OAuth2 password form.
func (srv *Server) login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	srv.data.mu.Lock()
	acc, ok := srv.data.accounts[req.Username]
	srv.data.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acc.password, []byte(req.Password)) != nil {
		response.Unauthorized(c, "Incorrect username or password")
		return
	}

	tok, err := srv.MintToken(acc.user.ID, srv.ttl)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tokenResponse{AccessToken: tok, TokenType: "bearer"})
}

func (srv *Server) me(c *gin.Context) {
	response.OK(c, currentUser(c))
}

// UserID returns the id of a registered user.
func (srv *Server) UserID(username string) (model.ID, bool) {
	srv.data.mu.Lock()
	defer srv.data.mu.Unlock()
	acc, ok := srv.data.accounts[username]
	if !ok {
		return "", false
	}
	return acc.user.ID, true
}
