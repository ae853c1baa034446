package fallback

import "strings"

var supportUrgency = phraseTable{
	phrases: map[string]string{
		"high":   "urgent",
		"urgent": "urgent",
	},
	fallback: "important",
}

const supportUrgentFollowUp = "Given the urgency of this matter, I will personally monitor the progress and keep you updated."

// High and Urgent share one follow-up; every other priority gets the default.
var supportFollowUp = phraseTable{
	phrases: map[string]string{
		"urgent": supportUrgentFollowUp,
		"high":   supportUrgentFollowUp,
	},
	fallback: "I will keep you informed of any updates throughout the resolution process.",
}

var supportTimeline = phraseTable{
	phrases: map[string]string{
		"within 1 hour":   "You can expect a resolution within 1 hour.",
		"within 24 hours": "You can expect a resolution within 24 hours.",
		"within 48 hours": "You can expect a resolution within 48 hours.",
		"within 1 week":   "You can expect a resolution within 1 week.",
		"tbd":             "I will confirm the expected resolution time as soon as I have it.",
	},
}

var supportToneLine = phraseTable{
	phrases: map[string]string{
		"empathetic": "I'm sorry you've had to deal with this.",
		"apologetic": "I sincerely apologize for the inconvenience this has caused.",
		"reassuring": "Rest assured, we are on it.",
	},
}

func customerSupport(v Values) string {
	l := newLetter("Re: " + v.Get("issueType", "Support Request") + " - Resolution Update")

	l.add("Dear " + v.Get("customerName", "Valued Customer") + ",")
	l.add("Thank you for contacting our support team regarding "+v.Clause("issueDescription", "your recent inquiry")+".",
		"I understand how "+supportUrgency.pick(v["priority"])+" this matter is to you.",
		supportToneLine.pick(v["tone"]))
	l.add(v.Sentence("solution", "I have investigated your issue and will provide you with a solution."),
		timelineSentence(v))
	l.add(supportFollowUp.pick(v["priority"]))
	l.add("Please don't hesitate to reach out if you have any questions or need further assistance.")
	l.block("Best regards,", v.Get("supportRepName", "Support Team"))

	return l.String()
}

func timelineSentence(v Values) string {
	if !v.Has("timeline") {
		return ""
	}
	if p, ok := supportTimeline.lookup(v["timeline"]); ok {
		return p
	}
	return "You can expect a resolution " + strings.ToLower(v.Clause("timeline", "")) + "."
}
