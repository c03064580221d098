package utils

import "github.com/gin-gonic/gin"

// APIError is the error body carried inside every failure envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope is the shape of every non-2xx response.
type ErrorEnvelope struct {
	Success bool     `json:"success"`
	Error   APIError `json:"error"`
}

// SuccessEnvelope is the shape of every 2xx response.
type SuccessEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// JSONError sends a standardized failure envelope.
func JSONError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorEnvelope{
		Success: false,
		Error:   APIError{Code: code, Message: message},
	})
}

// AbortJSONError sends a failure envelope and stops the handler chain.
func AbortJSONError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorEnvelope{
		Success: false,
		Error:   APIError{Code: code, Message: message},
	})
}

// JSONSuccess sends a standardized success envelope.
func JSONSuccess(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, SuccessEnvelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}
