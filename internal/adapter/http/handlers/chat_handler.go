package handlers

import (
	"net/http"

	request "laporan_zakat/internal/adapter/http/dto/request"
	response "laporan_zakat/internal/adapter/http/dto/response"
	"laporan_zakat/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the conversation of the authenticated session.
type ChatHandler struct {
	usecase usecase.IConversationUseCase
}

func NewChatHandler(uc usecase.IConversationUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// GetMessages godoc
// @Summary   Full transcript of the session
// @Tags      chat
// @Security  Bearer
// @Produce   json
// @Success   200  {array}   response.MessageResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /chat/messages [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	msgs, err := h.usecase.Transcript(sessionFrom(c).ID)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMessages(msgs))
}

// SendMessage godoc
// @Summary      Send one utterance
// @Description  Runs one dialogue turn and returns the messages it appended plus the resulting state.
// @Tags         chat
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        payload  body      request.SendMessageRequest  true  "Utterance"
// @Success      200      {object}  response.TurnResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /chat/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.SendMessage(c.Request.Context(), sessionFrom(c).ID, payload.ResolveText())
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTurn(res))
}

// SubmitAttachment godoc
// @Summary      Upload the proof of transfer
// @Description  Accepted only while the dialogue waits for an attachment. Oversized files produce a re-prompt.
// @Tags         chat
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Proof of transfer"
// @Success      200   {object}  response.TurnResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /chat/attachments [post]
func (h *ChatHandler) SubmitAttachment(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingAttachment.HTTPStatus, errMissingAttachment.ToHTTPError())
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(errMissingAttachment.HTTPStatus, errMissingAttachment.ToHTTPError())
		return
	}
	defer f.Close()

	res, err := h.usecase.SubmitAttachment(c.Request.Context(), sessionFrom(c).ID, usecase.AttachmentUpload{
		Name:        fh.Filename,
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	})
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTurn(res))
}

// GetState godoc
// @Summary   Current conversation state
// @Tags      chat
// @Security  Bearer
// @Produce   json
// @Success   200  {object}  response.StateResponse
// @Router    /chat/state [get]
func (h *ChatHandler) GetState(c *gin.Context) {
	st, err := h.usecase.State(sessionFrom(c).ID)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromState(st))
}
