package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// MessagePayload is the payload of the "message" channel.
type MessagePayload struct {
	Info *string `json:"info,omitempty"`
}

// NewMessage returns a payload carrying info.
func NewMessage(info string) MessagePayload {
	return MessagePayload{Info: &info}
}

// ToolOptionsMessage serializes tool options for the message channel.
// Nil options (or options that cannot be encoded) yield a payload without info.
func ToolOptionsMessage(opts *ToolOptions) MessagePayload {
	if opts == nil {
		return MessagePayload{}
	}
	b, err := json.Marshal(opts.Values)
	if err != nil {
		return MessagePayload{}
	}
	return NewMessage(string(b))
}

// InfoRecord is the structured form of a message info string.
type InfoRecord struct {
	AtomID *int `json:"atomId"`
	BondID *int `json:"bondId"`
}

var errNotObject = errors.New("info is not a JSON object")

// ParseInfo decodes info as a JSON object with optional integer atomId/bondId fields.
// Field names match case-insensitively, so "atomid" is accepted too.
func ParseInfo(info string) (InfoRecord, error) {
	var rec InfoRecord
	data := bytes.TrimSpace([]byte(info))
	if len(data) == 0 || data[0] != '{' {
		return rec, errNotObject
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("parse info: %w", err)
	}
	return rec, nil
}

// String renders the record for the measurement overlay.
func (r InfoRecord) String() string {
	return fmt.Sprintf("Atom Id: %s, Bond Id: %s", formatID(r.AtomID), formatID(r.BondID))
}

func formatID(id *int) string {
	if id == nil {
		return "-"
	}
	return strconv.Itoa(*id)
}
