// Package api provides the HTTP REST API and WebSocket server for Autolote Core.
//
// It exposes the vehicle inventory and user account endpoints to the
// management frontends, guarded by JWT authentication and role-based
// authorization, and pushes "resource changed" notifications to WebSocket
// subscribers.
//
// The server follows the same lifecycle pattern as other infrastructure
// components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api
