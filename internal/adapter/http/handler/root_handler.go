package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flashcardapp/internal/core/model/response"
)

const greeting = "Hello! There's nothing interesting for GET /"

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.GreetingResponse{Msg: greeting})
}
