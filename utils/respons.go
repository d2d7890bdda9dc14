package utils

import (
	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, APIResponse{
		Success: code >= 200 && code < 300,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, APIResponse{
		Success: false,
		Error:   err.Error(),
	})
}
