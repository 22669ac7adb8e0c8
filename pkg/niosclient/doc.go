// Package niosclient provides the primary entry point for constructing a
// NIOS WAPI connector that implements the wapi.Connector interface.
//
// It layers configuration resolution, the pooled HTTP session, and request
// construction on top of the types and errors defined in the wapi package.
// Most applications should import niosclient to build a connector, then use
// the returned wapi.Connector for the generic object operations.
//
// Quick start
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
//
//	  conn, err := niosclient.New(&wapi.Config{
//	    Host:        "nios.example.com",
//	    Username:    "admin",
//	    Password:    "infoblox",
//	    WAPIVersion: "2.5",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  ref, err := conn.CreateObject(ctx, "network", wapi.Payload{
//	    "network":      "10.0.0.0/24",
//	    "network_view": "default",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = ref
//	}
//
// # Loosely-typed options
//
// NewFromMap accepts the appliance tooling's conventional option map
// (host, username, password, wapi_version, ssl_verify, and so on) and
// resolves it through wapi.ResolveConfig before construction. Missing
// required options and blank credentials fail fast with *wapi.ConfigError.
//
// # Helpers
//
// The package also provides the convenience constructor NewWithPassword,
// which wraps New with the minimal required configuration.
package niosclient
