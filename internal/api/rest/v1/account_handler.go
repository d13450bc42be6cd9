package v1

import (
	"fmt"
	"net/http"

	"github.com/Justyn-98/Video-upload-web-service/internal/api/rest/middleware"
	"github.com/Justyn-98/Video-upload-web-service/internal/domain/users"
	"github.com/Justyn-98/Video-upload-web-service/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// AccountHandler defines the interface for handling account-related operations
type AccountHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
	GetMe(ctx *gin.Context)
	UpdateMe(ctx *gin.Context)
	ChangePassword(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	SetRoles(ctx *gin.Context)
}

// accountHandler struct holds the services
type accountHandler struct {
	accountService        users.AccountService
	accountDetailsService users.AccountDetailsService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService users.AccountService, accountDetailsService users.AccountDetailsService) AccountHandler {
	return &accountHandler{
		accountService:        accountService,
		accountDetailsService: accountDetailsService,
	}
}

// Register creates an account with the User role
func (handler *accountHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if !bindJSON(ctx, &request) {
		return
	}

	user, err := handler.accountService.Register(ctx, &users.RegisterRequest{
		UserName: request.UserName,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Login exchanges credentials for a bearer token
func (handler *accountHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if !bindJSON(ctx, &request) {
		return
	}

	result, err := handler.accountService.Login(ctx, &users.LoginRequest{
		Login:    request.Login,
		Password: request.Password,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{
		Token:     result.Token,
		TokenType: "Bearer",
		ExpiresAt: result.ExpiresAt,
		User:      newUserResponse(result.User),
	})
}

// Logout revokes the bearer token of the request
func (handler *accountHandler) Logout(ctx *gin.Context) {
	if err := handler.accountService.Logout(ctx, middleware.PrincipalFromContext(ctx)); err != nil {
		writeError(ctx, err)
		return
	}
	writeNoContent(ctx)
}

// GetMe returns the account of the caller
func (handler *accountHandler) GetMe(ctx *gin.Context) {
	user, err := handler.accountDetailsService.GetByID(ctx, middleware.PrincipalFromContext(ctx).UserID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateMe changes the profile of the caller
func (handler *accountHandler) UpdateMe(ctx *gin.Context) {
	var request UpdateProfileRequest
	if !bindJSON(ctx, &request) {
		return
	}

	user, err := handler.accountDetailsService.UpdateProfile(ctx, middleware.PrincipalFromContext(ctx).UserID, &users.UpdateProfileRequest{
		Email:       request.Email,
		DisplayName: request.DisplayName,
		Bio:         request.Bio,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// ChangePassword replaces the password of the caller
func (handler *accountHandler) ChangePassword(ctx *gin.Context) {
	var request ChangePasswordRequest
	if !bindJSON(ctx, &request) {
		return
	}

	err := handler.accountDetailsService.ChangePassword(ctx, middleware.PrincipalFromContext(ctx).UserID, &users.ChangePasswordRequest{
		CurrentPassword: request.CurrentPassword,
		NewPassword:     request.NewPassword,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeNoContent(ctx)
}

// List fetches accounts optionally with query parameters
func (handler *accountHandler) List(ctx *gin.Context) {
	query := users.NewUserQuery()
	query.UserName = ctx.Query("userName")
	query.Email = ctx.Query("email")
	query.Role = ctx.Query("role")
	query.Limit = strutil.ConvertToInt(ctx.Query("limit"), 0)
	query.Offset = strutil.ConvertToInt(ctx.Query("offset"), 0)
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if err := query.Validate(); err != nil {
		writeError(ctx, err)
		return
	}

	accounts, err := handler.accountDetailsService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []UserResponse{}
	for _, user := range accounts {
		listResponse = append(listResponse, newUserResponse(user))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID fetches an account by ID
func (handler *accountHandler) GetByID(ctx *gin.Context) {
	user, err := handler.accountDetailsService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}

// DeleteByID deletes an account with everything it owns
func (handler *accountHandler) DeleteByID(ctx *gin.Context) {
	userID := ctx.Param("id")
	if err := handler.accountDetailsService.DeleteByID(ctx, userID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, InfoResponse{Message: fmt.Sprintf("deleted user with id %s", userID)})
}

// SetRoles replaces the roles of an account
func (handler *accountHandler) SetRoles(ctx *gin.Context) {
	var request SetRolesRequest
	if !bindJSON(ctx, &request) {
		return
	}
	if err := request.Validate(); err != nil {
		writeError(ctx, err)
		return
	}

	user, err := handler.accountDetailsService.SetRoles(ctx, ctx.Param("id"), request.Roles)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}
