package domain

// Diff calculates the ordered actions that move the engine from prev to next.
// If prev is nil, it is treated as the empty configuration (initial mount), so
// slot changes only ever produce subscriptions.
//
// channels is the engine's channel set in enumeration order. Snapshots are
// compared by identity: a structure, tool options or options value counts as
// changed whenever the pointer differs, regardless of content.
func Diff(prev, next *Configuration, channels []ChannelName) []Action {
	if next == nil {
		return nil
	}
	old := prev
	if old == nil {
		old = &Configuration{}
	}

	var actions []Action

	// 1. Structure
	if next.Structure != old.Structure {
		actions = append(actions, Action{Type: ActionSetStructure, Payload: next.Structure})
	}

	// 2. Tool, and a message broadcast when the tool options changed
	toolOptsChanged := next.ToolOptions != old.ToolOptions
	if next.Tool != old.Tool || toolOptsChanged {
		actions = append(actions, Action{
			Type:    ActionSetTool,
			Payload: ToolChange{Name: next.Tool, Options: next.ToolOptions},
		})
		if toolOptsChanged {
			actions = append(actions, Action{
				Type:    ActionBroadcast,
				Payload: Broadcast{Channel: ChannelMessage, Payload: ToolOptionsMessage(next.ToolOptions)},
			})
		}
	}

	// 3. Options are only pushed once the engine was constructed with some.
	if prev != nil && prev.Options != nil && next.Options != prev.Options {
		actions = append(actions, Action{Type: ActionSetOptions, Payload: next.Options})
	}

	// 4. Callback slots
	for _, name := range channels {
		slot, ok := SlotFor(name)
		if !ok {
			continue
		}
		was, is := slot.Handler(old), slot.Handler(next)
		if was == is {
			continue
		}
		if was != nil {
			actions = append(actions, Action{
				Type:    ActionUnsubscribe,
				Payload: Subscription{Channel: name, Slot: slot.Name, Handler: was},
			})
		}
		if is != nil {
			actions = append(actions, Action{
				Type:    ActionSubscribe,
				Payload: Subscription{Channel: name, Slot: slot.Name, Handler: is},
			})
		}
	}

	return actions
}

// Teardown returns the unsubscribe pass for every callback current holds.
// Channels without a callback slot are skipped.
func Teardown(current *Configuration, channels []ChannelName) []Action {
	var actions []Action
	for _, name := range channels {
		slot, ok := SlotFor(name)
		if !ok {
			continue
		}
		if h := slot.Handler(current); h != nil {
			actions = append(actions, Action{
				Type:    ActionUnsubscribe,
				Payload: Subscription{Channel: name, Slot: slot.Name, Handler: h},
			})
		}
	}
	return actions
}
