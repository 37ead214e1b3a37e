package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reusedev/wp-hub/internal/modules/logs"
	"github.com/reusedev/wp-hub/internal/service/http/handler/request"
	"github.com/reusedev/wp-hub/internal/service/http/handler/response"
)

func (h *Handler) IntegrateImages(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Detail(request.ErrInvalidJSON.Error()))
		return
	}
	req, err := request.DecodeIntegrateImages(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Detail(err.Error()))
		return
	}
	if err = req.Valid(); err != nil {
		c.JSON(http.StatusBadRequest, response.Detail(err.Error()))
		return
	}

	content, err := h.integrator.IntegrateImages(c.Request.Context(), req.ToImages(), req.APIKey)
	if err != nil {
		logs.Logger.Err(err).Msg("handler-IntegrateImages")
		c.JSON(http.StatusInternalServerError, response.Detail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.IntegrateImages{ModifiedContent: content})
}
