/*
Package ports defines the driven ports (interfaces) for the rentals catalog server.

These interfaces decouple the dispatcher from the concrete record source, allowing
the same tool surface to run over the embedded dataset, a YAML/JSON file, a Loam
markdown repository or a Redis list.

# Key Interfaces

  - CatalogStore: Read-only query primitives over the loaded records.
  - CatalogLoader: Produces the record set once at startup.
*/
package ports
