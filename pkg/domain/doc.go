/*
Package domain contains the core domain models for the rentals catalog server.

It defines the catalog entities and the envelopes exchanged between a transport and
the tool dispatcher. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Shop: A rental shop in the catalog (id, descriptive fields, service and equipment tags).
  - ToolDescriptor: A named operation with its declared input schema.
  - Call: A decoded request (tool name + arguments).
  - Result: A response (ordered content blocks + error flag).
*/
package domain
