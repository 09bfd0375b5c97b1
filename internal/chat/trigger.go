package chat

import (
	"encoding/json"
	"strings"
)

// DefaultReason is used when a scheduling reply carries no usable
// reason of its own.
const DefaultReason = "Appointment requested via AI assistant"

const actionPrefix = "ACTION "

// Outcome is what a single assistant reply asks the UI to do. Both
// actions may fire on the same reply; they are independent.
type Outcome struct {
	// OpenSchedule asks the client to switch to the scheduling form,
	// pre-filled with Reason (never empty when OpenSchedule is set).
	OpenSchedule bool
	Reason       string

	// SendToMechanic asks for the reply text to be persisted into the
	// vehicle's issue field.
	SendToMechanic bool

	// Reply with any structured action line stripped.
	Reply string
}

type actionTag struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// AnalyzeReply inspects an assistant-authored reply. A trailing
// ACTION {...} tag wins when present and parseable; otherwise the
// substring heuristic runs. The heuristic's trigger strings are the
// contract: "schedule"/"appointment" open scheduling, "summary"/
// "send to the mechanic" forward the reply to the mechanic, and the
// pre-filled reason is the first line containing "reason" or "summary",
// verbatim.
func AnalyzeReply(reply string) Outcome {
	out := Outcome{Reply: reply}

	if tag, rest, ok := parseActionTag(reply); ok {
		out.Reply = rest
		switch tag.Action {
		case "schedule":
			out.OpenSchedule = true
			out.Reason = strings.TrimSpace(tag.Reason)
			if out.Reason == "" {
				out.Reason = DefaultReason
			}
		case "summary":
			out.SendToMechanic = true
		}
	}

	lower := strings.ToLower(out.Reply)

	if !out.OpenSchedule &&
		(strings.Contains(lower, "schedule") || strings.Contains(lower, "appointment")) {
		out.OpenSchedule = true
		out.Reason = extractReason(out.Reply)
	}

	if !out.SendToMechanic &&
		(strings.Contains(lower, "summary") || strings.Contains(lower, "send to the mechanic")) {
		out.SendToMechanic = true
	}

	return out
}

// parseActionTag pulls a structured action off the reply's last
// non-empty line.
func parseActionTag(reply string) (actionTag, string, bool) {
	lines := strings.Split(reply, "\n")

	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, actionPrefix) {
			return actionTag{}, reply, false
		}

		var tag actionTag
		if err := json.Unmarshal([]byte(line[len(actionPrefix):]), &tag); err != nil {
			return actionTag{}, reply, false
		}

		rest := strings.TrimRight(strings.Join(lines[:i], "\n"), "\n")
		return tag, rest, true
	}

	return actionTag{}, reply, false
}

func extractReason(reply string) string {
	for _, line := range strings.Split(reply, "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "reason") || strings.Contains(lower, "summary") {
			return line
		}
	}
	return DefaultReason
}
