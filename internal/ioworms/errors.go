package ioworms

import (
	"fmt"
	"net/http"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/pkg/errcode"
)

// TransportError is returned when WoRMS cannot be reached.
func TransportError(name string, err error) error {
	msg := `Cannot reach WoRMS while resolving <em>%s</em>

<em>How to fix:</em>
  1. Check the network connection
  2. Check <em>registry.url</em> in config.yaml
  3. Use an offline SFGA archive: <em>gnedna convert -r sfga --sfga path</em>`

	vars := []any{name}

	return &gn.Error{
		Code: errcode.RegistryTransportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("worms request for %q failed: %w", name, err),
	}
}

// StatusError is returned for unexpected HTTP status codes.
func StatusError(name string, status int) error {
	msg := "WoRMS returned <em>%d %s</em> for <em>%s</em>"
	vars := []any{status, http.StatusText(status), name}

	return &gn.Error{
		Code: errcode.RegistryStatusError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("worms status %d for %q", status, name),
	}
}

// DecodeError is returned when a WoRMS reply is not valid JSON.
func DecodeError(name string, err error) error {
	msg := "Cannot decode WoRMS reply for <em>%s</em>"
	vars := []any{name}

	return &gn.Error{
		Code: errcode.RegistryDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("worms reply for %q: %w", name, err),
	}
}
