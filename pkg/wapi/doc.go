// Package wapi provides the types, errors, and interfaces for talking to an
// Infoblox NIOS appliance over its versioned web API (WAPI).
//
// # Overview
//
// The wapi package defines the Config used to resolve connection options,
// the Connector interface with its five generic object operations (get,
// create, update, delete, and function call), and the typed error taxonomy
// raised when the appliance rejects a request. A concrete Connector is
// constructed by the niosclient package, which wires configuration, the
// pooled HTTP session, and request construction together.
//
// Getting a connector
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/gridpoint-io/nios/pkg/niosclient"
//	  "github.com/gridpoint-io/nios/pkg/wapi"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  conn, err := niosclient.New(&wapi.Config{
//	    Host:     "nios.example.com",
//	    Username: "admin",
//	    Password: "infoblox",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  networks, err := conn.GetObject(ctx, "network", wapi.Payload{"network_view": "default"}, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = networks
//	}
//
// # Errors
//
// Appliance rejections surface as typed errors (SearchError,
// CannotCreateError, CannotUpdateError, CannotDeleteError, FuncCallError)
// carrying the HTTP status, raw content, and parsed body. Transport
// failures become ConnectionError or TimeoutError. Helpers such as
// IsAuthError, IsTimeout, and IsMemberAlreadyAssigned make it easy to
// branch on common cases with errors.As semantics.
package wapi
