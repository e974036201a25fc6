// Package exchange implements a signed REST client for the Remitano API.
// It is endpoint-agnostic: callers pick the HTTP method, path, query,
// and JSON body, and the client handles APIAuth request signing,
// dispatch, and response decoding into a caller-supplied type.
//
// Example usage:
//
//	client, err := exchange.New(exchange.DefaultConfig(key, secret))
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	me, err := exchange.Request[User](ctx, client, http.MethodGet, "users/me", nil, nil)
package exchange
