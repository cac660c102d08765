package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"medibuddy/internal/utils"
)

// LimitBody rejects request bodies larger than maxBytes with 413 before any
// of the body is written to disk. Multipart forms are parsed here, keeping up
// to memory bytes in RAM, so handlers read files from the parsed form.
func LimitBody(maxBytes, memory int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil {
			c.Next()
			return
		}
		if c.Request.ContentLength > maxBytes {
			log.Printf("[Upload] Rejecting %d byte body on %s", c.Request.ContentLength, c.Request.URL.Path)
			utils.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		if c.ContentType() == binding.MIMEMultipartPOSTForm {
			if err := c.Request.ParseMultipartForm(memory); err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					utils.Error(c, http.StatusRequestEntityTooLarge, "Request body too large")
					c.Abort()
					return
				}
				log.Printf("[Upload] Failed to parse form on %s: %v", c.Request.URL.Path, err)
			}
		}
		c.Next()
	}
}
