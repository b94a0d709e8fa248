/*
Package domain contains the core models and the pure synchronization logic of molcanvas.

It defines the declarative Configuration snapshot a host hands to the canvas engine,
the engine event channels and their callback slots, and the cursor and message
payloads the engine emits. This package is kept pure and free of I/O, following
Hexagonal Architecture principles: the engine itself is reached only through pkg/ports.

# Key Entities

  - Configuration: An immutable snapshot of desired engine state and callback wiring.
  - Handler: A callback with a stable identity, so it can be added and removed from channels.
  - Action: A single imperative step (set structure, set tool, subscribe...) the host must apply.
  - Diff: Computes the ordered Action list that moves the engine from one Configuration to the next.
  - CursorEvent / MessagePayload: The payloads of the required "cursor" and "message" channels.
*/
package domain
