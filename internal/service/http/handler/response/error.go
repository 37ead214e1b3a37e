package response

import "github.com/gin-gonic/gin"

var (
	Detail = func(message string) gin.H {
		return gin.H{"detail": message}
	}

	RemoteError = func(err error) gin.H {
		return Detail("Error posting to WordPress: " + err.Error())
	}

	UnexpectedError = func(err error) gin.H {
		return Detail("An unexpected error occurred: " + err.Error())
	}
)
