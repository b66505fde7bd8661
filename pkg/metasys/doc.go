// Package metasys defines the public surface of the Metasys API client:
// the client and per-resource interfaces, configuration, resource types,
// query parameter builders, the lazy sequence type with its combinators,
// the paginator that drives it, and the item reference parser.
//
// # Overview
//
// A client is created unauthenticated and bound to a server by a login
// exchange:
//
//	client, _ := metasysclient.New(&metasys.Config{})
//	ok, diag := client.Login(ctx, "user", "secret", "controller.example.com")
//	if !ok {
//		// diag classifies the failure (connection, unknown host,
//		// bad credentials, untrusted certificate, unclassified)
//	}
//
// Collection endpoints return a Seq, a lazily produced sequence that fetches
// server pages on demand and never reads more than one page ahead of the
// consumer:
//
//	alarms := client.Alarms().List(ctx, nil)
//	urgent := metasys.Filter(alarms, func(a metasys.Alarm) bool {
//		return a.Priority < 50
//	})
//	items, err := metasys.Collect(urgent)
//
// A Seq holds no resources between pages; abandoning iteration simply stops
// further fetches. Re-iterating a Seq issues fresh server calls, since
// nothing is cached.
//
// # Errors
//
// Server-side failures surface as *APIError. A 404 for a collection resource
// is recovered internally and produces an empty sequence rather than an
// error. Any other failure while advancing a sequence is delivered to the
// consumer mid-iteration, after zero or more items were already yielded.
// Calling a data-fetch operation before a successful login fails fast with
// ErrNotAuthenticated.
package metasys
