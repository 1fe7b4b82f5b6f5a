package request

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// BindPayload decodes the JSON body as an object. An empty body is an empty
// payload, so missing fields are reported by the entity validation. Any other
// decode failure is ErrRequestInvalidJSON; the decoder's text is only logged.
func BindPayload(c *gin.Context) (domain.Payload, error) {
	var p domain.Payload
	if err := c.ShouldBindJSON(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Payload{}, nil
		}
		logrus.Debugf("failed to decode request body: %v", err)
		return nil, domain.ErrRequestInvalidJSON
	}
	if p == nil {
		p = domain.Payload{}
	}
	return p, nil
}
