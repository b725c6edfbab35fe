package param

import (
	"net/http"
)

// Request is what resolvers see of the incoming request.
type Request struct {
	HTTP       *http.Request
	Attributes *Attributes
}

func NewRequest(r *http.Request, attrs *Attributes) *Request {
	if attrs == nil {
		attrs = NewAttributes(nil)
	}

	return &Request{
		HTTP:       r,
		Attributes: attrs,
	}
}
