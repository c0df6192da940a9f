// Package pkg provides the libraries behind the solarsys CLI.
//
// # Overview
//
// Solarsys fetches celestial bodies from the public solar-system API and
// prints them as plain terminal lines. The pkg directory is organized as:
//
//  1. [solarsys] - API client, lenient JSON decoding and typed errors
//  2. [present] - Terminal rendering of summaries and detail views
//  3. [observability] - Hooks the client emits HTTP events through
//  4. [buildinfo] - Version information injected at build time
//
// # Architecture
//
// One run performs a single request:
//
//	solarsys.Client.BuildURL
//	         ↓
//	    one HTTP GET (observability hooks fire)
//	         ↓
//	    solarsys.DecodeList / DecodeBody
//	         ↓
//	    present.Printer (text) or JSON
//
// # Quick Start
//
//	client := solarsys.NewClient()
//	body, err := client.GetBody(ctx, "mars")
//	if err != nil {
//	    return err
//	}
//	return present.New(os.Stdout).Details(*body)
package pkg
