package host

// OverlayView is the rendered state of the measurement overlay.
type OverlayView struct {
	Text    string `json:"text"`
	Visible bool   `json:"visible"`
}

// View is what the host renders around the engine.
type View struct {
	InstanceID    string      `json:"instance_id,omitempty"`
	Attached      bool        `json:"attached"`
	Tag           string      `json:"tag"`
	ClassName     string      `json:"class_name"`
	CursorEnabled bool        `json:"cursor_enabled"`
	Overlay       OverlayView `json:"overlay"`
	Subscriptions int         `json:"subscriptions"`
}

// View snapshots the host's presentation state.
func (h *Host) View() View {
	cfg := h.Config()
	text, visible := h.Overlay()
	return View{
		InstanceID:    h.InstanceID(),
		Attached:      h.Attached(),
		Tag:           cfg.ContainerTag(),
		ClassName:     cfg.ContainerClass(),
		CursorEnabled: h.CursorEnabled(),
		Overlay:       OverlayView{Text: text, Visible: visible},
		Subscriptions: h.Subscriptions(),
	}
}
