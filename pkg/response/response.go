package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/ucsb-cslas/cslas-api/pkg/errors"
)

// Envelope is the error contract shared by every endpoint.
type Envelope struct {
	Error *appErrors.Error `json:"error,omitempty"`
}

// JSON writes the payload as-is. Resource endpoints return bare records so
// clients can round-trip them without unwrapping.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Attachment sends a downloadable file body.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Cache-Control", "no-store")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, contentType, body)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, Envelope{Error: appErr})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
