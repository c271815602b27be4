package server

import "errors"

// ErrAPIKeyRequired is returned when the server would listen publicly without an API key.
var ErrAPIKeyRequired = errors.New("server.api_key is required when binding to a non-loopback host")
