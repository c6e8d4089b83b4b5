package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lovematch/backend/internal/domain"
	"github.com/lovematch/backend/internal/service"
)

func (h *Handler) initAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")

	auth.POST("/register", h.register)
	auth.POST("/verify-and-create", h.verifyAndCreate)
	auth.POST("/login", h.login)
	auth.POST("/logout", h.logout)
	auth.POST("/send-verify-otp", h.sendVerifyOtp)
	auth.GET("/is-authenticated", h.sessionMiddleware, h.isAuthenticated)
	auth.POST("/send-reset-otp", h.sendResetOtp)
	auth.POST("/verify-reset-otp", h.verifyResetOtp)
	auth.POST("/reset-password", h.resetPassword)
}

type userResponse struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FullName          string `json:"fullName"`
	IsAccountVerified bool   `json:"isAccountVerified"`
	Role              string `json:"role"`
	IDPin             string `json:"idPin,omitempty"`
} // @name User

func newUserResponse(account *domain.Account) userResponse {
	return userResponse{
		ID:                account.ID.String(),
		Email:             account.Email,
		FullName:          account.FullName,
		IsAccountVerified: account.Verified,
		Role:              account.Role,
		IDPin:             account.Pin.String,
	}
}

type userEnvelope struct {
	response
	User userResponse `json:"user"`
} // @name UserEnvelope

type registerInput struct {
	FullName string `json:"fullName" binding:"required,min=2,max=64"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

// @Summary Register
// @Tags Auth
// @Description Creates an unverified account and emails a 6-digit OTP
// @Accept json
// @Produce json
// @Param input body registerInput true "registration details"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 500 {object} Response
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	err := h.services.Accounts.Register(c.Request.Context(), service.RegisterInput{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okResponse(c, http.StatusOK, "Verification email sent")
}

type verifyAndCreateInput struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required,otp"`
}

// @Summary Verify and create
// @Tags Auth
// @Description Confirms the OTP, assigns the account pin and opens a session
// @Accept json
// @Produce json
// @Param input body verifyAndCreateInput true "email and OTP"
// @Success 200 {object} UserEnvelope
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /auth/verify-and-create [post]
func (h *Handler) verifyAndCreate(c *gin.Context) {
	var input verifyAndCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	account, session, err := h.services.Accounts.VerifyAndCreate(c.Request.Context(), input.Email, input.Otp)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	h.setSessionCookie(c, session)

	c.JSON(http.StatusOK, userEnvelope{
		response: response{Success: true, Message: "Account verified successfully"},
		User:     newUserResponse(account),
	})
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Login
// @Tags Auth
// @Description Opens a session for an existing account
// @Accept json
// @Produce json
// @Param input body loginInput true "credentials"
// @Success 200 {object} UserEnvelope
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	account, session, err := h.services.Accounts.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	h.setSessionCookie(c, session)

	c.JSON(http.StatusOK, userEnvelope{
		response: response{Success: true, Message: "Successfully logged in!"},
		User:     newUserResponse(account),
	})
}

// @Summary Logout
// @Tags Auth
// @Description Clears the session cookie; always succeeds
// @Produce json
// @Success 200 {object} Response
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)

	okResponse(c, http.StatusOK, "Successfully logged out!")
}

type emailInput struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary Resend verification OTP
// @Tags Auth
// @Description Regenerates the verification OTP for an unverified account
// @Accept json
// @Produce json
// @Param input body emailInput true "account email"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /auth/send-verify-otp [post]
func (h *Handler) sendVerifyOtp(c *gin.Context) {
	var input emailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Accounts.SendVerifyOtp(c.Request.Context(), input.Email); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okResponse(c, http.StatusOK, "Verification OTP sent to your email")
}

// @Summary Is authenticated
// @Tags Auth
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} Response
// @Security SessionCookie
// @Router /auth/is-authenticated [get]
func (h *Handler) isAuthenticated(c *gin.Context) {
	okResponse(c, http.StatusOK, "User is authenticated!")
}

// @Summary Send password reset OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body emailInput true "account email"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /auth/send-reset-otp [post]
func (h *Handler) sendResetOtp(c *gin.Context) {
	var input emailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Accounts.SendResetOtp(c.Request.Context(), input.Email); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okResponse(c, http.StatusOK, "OTP sent to your email to reset password")
}

type verifyResetOtpInput struct {
	Email string `json:"email" binding:"required,email"`
	Otp   string `json:"otp" binding:"required,otp"`
}

// @Summary Verify password reset OTP
// @Tags Auth
// @Accept json
// @Produce json
// @Param input body verifyResetOtpInput true "email and OTP"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /auth/verify-reset-otp [post]
func (h *Handler) verifyResetOtp(c *gin.Context) {
	var input verifyResetOtpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Accounts.VerifyResetOtp(c.Request.Context(), input.Email, input.Otp); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okResponse(c, http.StatusOK, "OTP verified successfully")
}

type resetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=8,max=64"`
}

// @Summary Reset password
// @Tags Auth
// @Description Stores a new password after a verified reset OTP
// @Accept json
// @Produce json
// @Param input body resetPasswordInput true "email and new password"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 500 {object} Response
// @Router /auth/reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	var input resetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		validationErrorResponse(c, err)
		return
	}

	if err := h.services.Accounts.ResetPassword(c.Request.Context(), input.Email, input.NewPassword); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	okResponse(c, http.StatusOK, "Password updated successfully!")
}

func (h *Handler) setSessionCookie(c *gin.Context, session *service.Session) {
	if h.config.HttpServer.CookieSecure {
		// Cross-site frontend needs SameSite=None, which requires Secure.
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}

	c.SetCookie(sessionCookie, session.Token, int(session.TTL.Seconds()), "/",
		h.config.HttpServer.CookieDomain, h.config.HttpServer.CookieSecure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	if h.config.HttpServer.CookieSecure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}

	c.SetCookie(sessionCookie, "", -1, "/",
		h.config.HttpServer.CookieDomain, h.config.HttpServer.CookieSecure, true)
}
