package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/estatia/estatia/internal/application"
	"github.com/estatia/estatia/pkg/response"
	"github.com/estatia/estatia/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req application.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	user, err := h.Svc.Signup(c.Request.Context(), req)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("email", req.Email).Warn("signup failed")
		}
		response.AppError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user, "User registered successfully")
}
