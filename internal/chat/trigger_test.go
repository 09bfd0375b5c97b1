package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeReplyScheduleWithReasonLine(t *testing.T) {
	out := AnalyzeReply("Reason: brake noise\nPlease schedule an appointment")

	assert.True(t, out.OpenSchedule)
	assert.Equal(t, "Reason: brake noise", out.Reason)
}

func TestAnalyzeReplyScheduleFallbackReason(t *testing.T) {
	out := AnalyzeReply("You should schedule a visit soon.")

	assert.True(t, out.OpenSchedule)
	assert.Equal(t, DefaultReason, out.Reason)
}

func TestAnalyzeReplyNoTriggers(t *testing.T) {
	out := AnalyzeReply("Try checking your tire pressure first.")

	assert.False(t, out.OpenSchedule)
	assert.False(t, out.SendToMechanic)
	assert.Empty(t, out.Reason)
}

func TestAnalyzeReplySummaryTrigger(t *testing.T) {
	out := AnalyzeReply("Here is a summary of your issue: worn pads.")

	assert.True(t, out.SendToMechanic)
	// "summary" also satisfies the reason-line scan once scheduling
	// opens, but alone it does not open scheduling.
	assert.False(t, out.OpenSchedule)
}

func TestAnalyzeReplySendToMechanicTrigger(t *testing.T) {
	out := AnalyzeReply("I will send to the mechanic what you described.")

	assert.True(t, out.SendToMechanic)
	assert.False(t, out.OpenSchedule)
}

func TestAnalyzeReplyBothTriggersFireIndependently(t *testing.T) {
	out := AnalyzeReply("Summary: coolant leak.\nLet's schedule an appointment.")

	assert.True(t, out.OpenSchedule)
	assert.True(t, out.SendToMechanic)
	assert.Equal(t, "Summary: coolant leak.", out.Reason)
}

func TestAnalyzeReplyCaseInsensitive(t *testing.T) {
	out := AnalyzeReply("Please SCHEDULE an APPOINTMENT")

	assert.True(t, out.OpenSchedule)
}

func TestAnalyzeReplyStructuredAction(t *testing.T) {
	reply := "Happy to get you booked in.\nACTION {\"action\":\"schedule\",\"reason\":\"Brake inspection\"}"
	out := AnalyzeReply(reply)

	assert.True(t, out.OpenSchedule)
	assert.Equal(t, "Brake inspection", out.Reason)
	// The tag is stripped from what the customer sees.
	assert.Equal(t, "Happy to get you booked in.", out.Reply)
}

func TestAnalyzeReplyStructuredActionEmptyReason(t *testing.T) {
	reply := "Booking you in.\nACTION {\"action\":\"schedule\"}"
	out := AnalyzeReply(reply)

	assert.True(t, out.OpenSchedule)
	assert.Equal(t, DefaultReason, out.Reason)
}

func TestAnalyzeReplyStructuredSummaryAction(t *testing.T) {
	reply := "Noted, passing it along.\nACTION {\"action\":\"summary\"}"
	out := AnalyzeReply(reply)

	assert.True(t, out.SendToMechanic)
	assert.False(t, out.OpenSchedule)
	assert.Equal(t, "Noted, passing it along.", out.Reply)
}

func TestAnalyzeReplyMalformedActionFallsBack(t *testing.T) {
	reply := "Please schedule a visit.\nACTION {not json}"
	out := AnalyzeReply(reply)

	assert.True(t, out.OpenSchedule)
	assert.Equal(t, DefaultReason, out.Reason)
	// Malformed tag stays visible; we never guess at intent.
	assert.Equal(t, reply, out.Reply)
}

func TestAnalyzeReplyReasonIsNeverEmptyWhenScheduling(t *testing.T) {
	replies := []string{
		"schedule",
		"appointment",
		"We should schedule something.\n\n",
		"ACTION {\"action\":\"schedule\",\"reason\":\"   \"}",
	}

	for _, r := range replies {
		out := AnalyzeReply(r)
		if assert.True(t, out.OpenSchedule, "reply %q", r) {
			assert.NotEmpty(t, out.Reason, "reply %q", r)
		}
	}
}
