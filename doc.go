/*
Package molcanvas keeps an imperative structure-editor canvas in sync with
declarative configuration snapshots.

A host owns one engine instance. On every render the caller hands it a new
domain.Configuration; the host diffs it against the previous snapshot and
applies only what changed: the structure, the active tool (with its options
echoed to the message channel), the engine settings, and the callbacks
attached to each engine channel. Handles are compared by identity, never by
content.

Two overlays are wired directly to engine channels. The cursor state
machine toggles a marker class on the canvas from "cursor" events, and the
measurement overlay renders the atom and bond ids carried by "message"
events.

# Usage

	ed := molcanvas.New(molcanvas.WithMetrics(prometheus.DefaultRegisterer))

	cfg := &domain.Configuration{
		Structure: domain.NewStruct("smiles", "c1ccccc1"),
		Tool:      "select",
		OnChange:  domain.NewHandler(func(p domain.Payload) { log.Println("changed", p) }),
	}
	if err := ed.Attach(host.Elements{Canvas: canvasEl, Log: logEl}, cfg); err != nil {
		log.Fatal(err)
	}
	defer ed.Detach()

	// later, on the next render
	next := *cfg
	next.Tool = "bond"
	_ = ed.Update(&next)

# Packages

  - pkg/domain: snapshots, channels, the Diff function and lifecycle events.
  - pkg/ports: the Engine, Channel and Element interfaces an engine adapter implements.
  - pkg/host: attach/update/detach and action application.
  - pkg/registry: identity-keyed bookkeeping of registered callbacks.
  - pkg/cursor and pkg/overlay: the two channel-driven overlays.
  - pkg/adapters/memory: an engine that records calls, used by tests and the CLI.
  - pkg/adapters/http: an HTTP harness over a mounted host.
  - pkg/observability: Prometheus metrics from lifecycle hooks.
*/
package molcanvas
