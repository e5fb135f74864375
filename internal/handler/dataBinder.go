package handler

import (
	"fmt"

	"github.com/anhtri22303/uni-club-sub009/internal/errdef"

	"github.com/gin-gonic/gin"
)

func DataBinder(c *gin.Context, req interface{}) error {
	if c.ContentType() != "application/json" {
		reason := fmt.Sprintf("%s only accepts content of type application/json", c.FullPath())
		return errdef.NewUnsupportedMediaType(reason)
	}

	if err := c.ShouldBind(req); err != nil {
		message := fmt.Sprintf("Error binding data: %+v\n", err)
		return errdef.NewBadRequest(message)
	}

	return nil
}

// QueryBinder binds query string parameters. Unlike DataBinder it performs no content type check
// since GET requests carry no body.
func QueryBinder(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		message := fmt.Sprintf("Error binding query parameters: %+v\n", err)
		return errdef.NewBadRequest(message)
	}

	return nil
}
