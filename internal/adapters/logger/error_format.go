package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one level of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain from the outermost error inwards.
// zerr levels contribute their own message and metadata; the first standard
// error contributes its full text and ends the walk. A zerr level without a
// message only carries metadata, which is folded into the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			break
		}

		meta := map[string]any{}
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}

		if m.Message() == "" {
			if pending == nil {
				pending = map[string]any{}
			}
			maps.Copy(pending, meta)
		} else {
			if pending != nil {
				maps.Copy(meta, pending)
				pending = nil
			}
			entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
		}
		current = errors.Unwrap(current)
	}

	if pending != nil && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.Metadata == nil {
			last.Metadata = map[string]any{}
		}
		maps.Copy(last.Metadata, pending)
	}

	return entries
}

// formatErrorEntries renders entries as an "Error:" line followed by a "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		first, rest := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			first, rest = "    → ", "      "
		}

		lines = append(lines, first+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, rest+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			value := strings.TrimRight(fmt.Sprint(entry.Metadata[key]), "\n")
			// captured tool output spans lines; keep it under its key
			value = strings.ReplaceAll(value, "\n", "\n"+rest+"  ")
			lines = append(lines, fmt.Sprintf("%s%s: %s", rest, key, value))
		}
	}

	return strings.Join(lines, "\n")
}
