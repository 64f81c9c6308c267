package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ai-todo-manager/internal/middleware"
	pkgErrors "ai-todo-manager/pkg/errors"
	"ai-todo-manager/pkg/response"
)

const stateCookie = "oauth_state"

// SignUp godoc
// @Summary     Register an account
// @Description Creates an account with email and password and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signUpReq true "Account data"
// @Success     200 {object} authResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     409 {object} response.ErrResp "Email already registered"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/auth/signup [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignUpReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SignUp(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignUp: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAuthResp(output))
}

// SignIn godoc
// @Summary     Sign in
// @Description Verifies email and password and returns a session token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signInReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.ErrResp "Bad Request"
// @Failure     401 {object} response.ErrResp "Invalid credentials"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /api/auth/signin [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignInReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SignIn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAuthResp(output))
}

// SignOut godoc
// @Summary     Sign out
// @Description Sessions are stateless tokens; the client discards its copy.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} map[string]bool
// @Router      /api/auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	response.OK(c, gin.H{"success": true})
}

// Me godoc
// @Summary     Current user
// @Description Returns the signed-in user's profile.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.ErrResp "Unauthorized"
// @Failure     404 {object} response.ErrResp "Not Found"
// @Security    BearerAuth
// @Router      /api/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(output))
}

// GoogleRedirect godoc
// @Summary     Start Google sign-in
// @Description Redirects to the Google consent page with a CSRF state cookie.
// @Tags        Auth
// @Success     307
// @Failure     500 {object} response.ErrResp "Google sign-in not configured"
// @Router      /api/auth/google [GET]
func (h *handler) GoogleRedirect(c *gin.Context) {
	state := uuid.NewString()
	url := h.uc.GoogleAuthURL(state)
	if url == "" {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusInternalServerError, "구글 로그인이 설정되어 있지 않아"))
		return
	}

	c.SetCookie(stateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback godoc
// @Summary     Finish Google sign-in
// @Description Validates the state cookie, exchanges the code and returns a session token.
// @Tags        Auth
// @Produce     json
// @Param       code  query string true "OAuth authorization code"
// @Param       state query string true "CSRF state"
// @Success     200 {object} authResp
// @Failure     401 {object} response.ErrResp "Authentication failed"
// @Router      /api/auth/google/callback [GET]
func (h *handler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		h.l.Warnf(ctx, "GoogleCallback: state mismatch")
		response.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "구글 로그인에 실패했어. 다시 시도해줘."))
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	output, err := h.uc.GoogleSignIn(ctx, c.Query("code"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GoogleSignIn: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAuthResp(output))
}
