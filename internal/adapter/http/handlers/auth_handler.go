package handlers

import (
	"net/http"

	request "laporan_zakat/internal/adapter/http/dto/request"
	response "laporan_zakat/internal/adapter/http/dto/response"
	"laporan_zakat/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler opens and closes chat sessions.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Log in an operator
// @Description  Validates operator credentials and opens a chat session seeded with the greeting message.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Login(c.Request.Context(), payload.ResolveOperatorCode(), payload.Secret)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(s))
}

// Logout godoc
// @Summary   Close the current session
// @Tags      auth
// @Security  Bearer
// @Success   204
// @Failure   401  {object}  pkg.HTTPError
// @Router    /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if s := sessionFrom(c); s != nil {
		h.usecase.Logout(s.ID)
	}
	c.Status(http.StatusNoContent)
}
