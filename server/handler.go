package server

// A Handler maps a parsed request to the response that should be sent.
// ServeRequest is called concurrently from every connection goroutine.
type Handler interface {
	ServeRequest(req Request) (Response, error)
}

type HandlerFunc func(req Request) (Response, error)

func (f HandlerFunc) ServeRequest(req Request) (Response, error) {
	return f(req)
}

// ParseErrorHandler decides what a client gets back when its request line
// could not be parsed. Returning a non-nil error drops the connection
// without a response.
type ParseErrorHandler func(err error) (Response, error)
