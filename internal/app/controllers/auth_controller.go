package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/emrekoc/campushub/internal/app/models/dto"
	"github.com/emrekoc/campushub/internal/app/services"
	"github.com/emrekoc/campushub/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a new account with a role-specific profile and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse} "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format, role or password"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	c.logger.Info().
		Str("email", req.Email).
		Str("role", req.Role).
		Msg("User registration request received")

	authResponse, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(authResponse, "User registered successfully"))
}

// Login authenticates a user and issues a token
// @Summary Log in
// @Description Verifies credentials and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	authResponse, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login attempt failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse, "Login successful"))
}

// CheckUser reports whether an account exists for an email and whether its
// password has been set, driving the first-login setup flow
// @Summary Check account status
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CheckUserRequest true "Email to check"
// @Success 200 {object} dto.APIResponse{data=dto.CheckUserResponse}
// @Router /auth/check-user [post]
func (c *AuthController) CheckUser(ctx *gin.Context) {
	var req dto.CheckUserRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.authService.CheckUser(ctx.Request.Context(), req.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result, "User status retrieved"))
}

// SetupPassword sets the initial password for a pre-provisioned account.
// Accounts are never created here; unknown emails are rejected.
// @Summary Set initial password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SetupPasswordRequest true "Email and new password"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Password set successfully"
// @Failure 404 {object} dto.ErrorResponse "No account for this email"
// @Failure 409 {object} dto.ErrorResponse "Password already set"
// @Router /auth/setup-password [post]
func (c *AuthController) SetupPassword(ctx *gin.Context) {
	var req dto.SetupPasswordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	authResponse, err := c.authService.SetupPassword(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(authResponse, "Password set successfully"))
}

// Me returns the authenticated user's account and profile
// @Summary Get current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ExtendedUserResponse}
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.authService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(profile, "Profile retrieved"))
}
