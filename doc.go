/*
Package rentals serves a fixed catalog of ski and snowboard rental shops to AI agents
as a small set of Model Context Protocol tools.

The catalog is loaded once at startup (built-in dataset, YAML/JSON file, Loam markdown
repository or Redis list) and frozen into a read-only store. The Server dispatches each
tool call against that store and always answers with a result envelope: content blocks
plus an error flag. Bad calls never take the process down.

# Tools

  - list_all: every shop, in catalog order.
  - get_details {id}: one shop, or an error result if the id is unknown.
  - search {query}: case-insensitive substring search over names, locations, descriptions and tags.
  - recommend {need}: shops selected by a first-match keyword policy, with an explanation.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/rentals"
	)

	func main() {
		ctx := context.Background()

		srv, err := rentals.New(ctx)
		if err != nil {
			log.Fatal(err)
		}

		res := srv.CallTool(ctx, "recommend", map[string]any{"need": "backcountry"})
		fmt.Println(res.Text())
	}

To expose the server over stdio, wrap it with pkg/adapters/mcp or run `rentals mcp`.
*/
package rentals
