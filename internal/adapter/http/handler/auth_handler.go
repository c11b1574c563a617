package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	. "flashcardapp/internal/adapter/http/helper"
	. "flashcardapp/internal/adapter/http/validation"
	"flashcardapp/internal/core/domain"
	"flashcardapp/internal/core/model/request"
	"flashcardapp/internal/core/port"
	"flashcardapp/internal/core/util"
	"flashcardapp/pkg/logger"
)

const (
	MessageRegistered      = "User registered successfully"
	MessageLoggedIn        = "Login successful"
	MessageUserNotFound    = "User not found"
	MessageInvalidPassword = "Incorrect password"
)

type AuthHandler struct {
	svc    port.AuthService
	logger *logger.Logger
}

func NewAuthHandler(svc port.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

func (a *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.RegisterRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	user, err := a.svc.Registration(ctx, &params)

	if err != nil {
		logFailure(c, a.logger, "registration failed", err, zap.String("username", params.Username))
		SendDomainError(c, err)
		return
	}

	a.logger.InfoWithTrace(ctx, "user registered", zap.Int64("user_id", user.ID))

	SendMessage(c, http.StatusCreated, MessageRegistered)
}

func (a *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	params, err := util.ParamsToMap[request.LoginRequest](c)

	if err != nil {
		SendBadRequestError(c, "request", "Invalid request parameters")
		return
	}

	if err := Validator.Struct(params); err != nil {
		SendValidationError(c, err)
		return
	}

	_, err = a.svc.Authenticate(ctx, &params)

	switch {
	case err == nil:
		SendMessage(c, http.StatusOK, MessageLoggedIn)
	case errors.Is(err, domain.ErrUserNotFound):
		SendMessage(c, http.StatusUnauthorized, MessageUserNotFound)
	case errors.Is(err, domain.ErrInvalidPassword):
		SendMessage(c, http.StatusUnauthorized, MessageInvalidPassword)
	default:
		logFailure(c, a.logger, "login failed", err, zap.String("username", params.Username))
		SendDomainError(c, err)
	}
}
