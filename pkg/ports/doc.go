/*
Package ports defines the driven ports (interfaces) between molcanvas and the canvas engine.

These interfaces decouple the synchronization bridge from any concrete drawing engine,
allowing the host to run against the in-memory adapter in tests and headless tools.

# Key Interfaces

  - Engine: The imperative editor surface (structure, tool, options) plus its channels.
  - Channel: A named, engine-owned event stream supporting add/remove/dispatch.
  - Element: The host-side element the engine is mounted on (bounding box, classes, text).
  - EngineFactory: Constructs an Engine against a root element with initial settings.
*/
package ports
