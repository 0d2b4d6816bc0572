package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/handler/v1/request"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api/handler/v1/response"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/config"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/domain"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/pkg/jwthelper"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/service"
)

type AuthService interface {
	RegisterStudent(ctx context.Context, user domain.User) (domain.User, error)
	LoginStudent(ctx context.Context, email, password string) (domain.User, error)
	RegisterOrganiser(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error)
	LoginOrganiser(ctx context.Context, email, password string) (domain.Organiser, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleRegisterStudent godoc
// @Summary      Register a new student account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterStudentRequest  true  "request body"
// @Success      200      {object}  response.UserAuth
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/register [post]
func (h *AuthHandler) HandleRegisterStudent(ctx *gin.Context) {
	var req request.RegisterStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.RegisterStudent(ctx.Request.Context(), domain.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
		Year:       req.Year,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleRegisterStudent -> h.svc.RegisterStudent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.Email, user.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleRegisterStudent -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.UserAuth{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    user,
	})
}

// HandleLoginStudent godoc
// @Summary      Login a student
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.UserAuth
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/login [post]
func (h *AuthHandler) HandleLoginStudent(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.LoginStudent(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials())
			return
		}

		err = fmt.Errorf("v1.HandleLoginStudent -> h.svc.LoginStudent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.Email, user.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleLoginStudent -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.UserAuth{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// HandleRegisterOrganiser godoc
// @Summary      Register a new organiser account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterOrganiserRequest  true  "request body"
// @Success      200      {object}  response.OrganiserAuth
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/organiser/register [post]
func (h *AuthHandler) HandleRegisterOrganiser(ctx *gin.Context) {
	var req request.RegisterOrganiserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	organiser, err := h.svc.RegisterOrganiser(ctx.Request.Context(), domain.Organiser{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Department: req.Department,
		Phone:      req.Phone,
	})
	if err != nil {
		if errors.Is(err, service.ErrOrganiserEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrOrganiserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleRegisterOrganiser -> h.svc.RegisterOrganiser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), organiser.ID, organiser.Email, organiser.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleRegisterOrganiser -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OrganiserAuth{
		Success:   true,
		Message:   "Organiser registered successfully",
		Token:     token,
		Organiser: organiser,
	})
}

// HandleLoginOrganiser godoc
// @Summary      Login an organiser
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.OrganiserAuth
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /api/organiser/login [post]
func (h *AuthHandler) HandleLoginOrganiser(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	organiser, err := h.svc.LoginOrganiser(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrOrganiserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials())
			return
		}

		err = fmt.Errorf("v1.HandleLoginOrganiser -> h.svc.LoginOrganiser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), organiser.ID, organiser.Email, organiser.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleLoginOrganiser -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.OrganiserAuth{
		Success:   true,
		Message:   "Login successful",
		Token:     token,
		Organiser: organiser,
	})
}
