// Package solarsys is a client for the Solar System OpenData bodies API.
//
// # Overview
//
// The API exposes a single collection of celestial bodies (planets, moons,
// asteroids, comets, ...). This package covers the two read paths the CLI needs:
//
//   - [Client.ListBodies]: GET the collection, decoded from {"bodies": [...]}
//   - [Client.GetBody]: GET one body by identifier, decoded from a bare object
//
// Each call performs exactly one HTTP request. There is no retry, caching or
// pagination.
//
// # Decoding
//
// Only "name" and "id" are required. Every other field is optional and
// resolves to nil when it is missing, null, or carries an unexpected JSON
// type:
//
//	b, err := solarsys.DecodeBody([]byte(`{"name":"Mars","id":"mars","density":"n/a"}`))
//	// err == nil, b.Density == nil
//
// # Errors
//
// Failures are reported as [*TransportError] (network, body read, non-2xx
// status) or [*DecodeError] (malformed JSON, missing required field). Use
// errors.As to distinguish them:
//
//	var te *solarsys.TransportError
//	if errors.As(err, &te) && te.StatusCode != 0 {
//	    // server answered with a non-success status
//	}
package solarsys
