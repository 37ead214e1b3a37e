package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/wp-hub/internal/modules/logs"
	"github.com/reusedev/wp-hub/internal/modules/wordpress"
	"github.com/reusedev/wp-hub/internal/service/http/handler/request"
	"github.com/reusedev/wp-hub/internal/service/http/handler/response"
)

func (h *Handler) PostToWordPress(c *gin.Context) {
	req := &request.Post{}
	err := c.ShouldBindJSON(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Detail(err.Error()))
		return
	}

	data, err := h.poster.CreatePost(c.Request.Context(), req.ToPostRequest())
	if err != nil {
		logs.Logger.Err(err).Str("url", *req.URL).Msg("handler-PostToWordPress")
		var remoteErr *wordpress.RemoteRequestError
		if errors.As(err, &remoteErr) {
			c.JSON(http.StatusInternalServerError, response.RemoteError(err))
			return
		}
		c.JSON(http.StatusInternalServerError, response.UnexpectedError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewPostCreated(data))
}
