package fallback

import "fmt"

// eventOpener values are format strings taking the event name.
var eventOpener = phraseTable{
	phrases: map[string]string{
		"exciting": "We're thrilled to invite you to %s!",
		"formal":   "You are cordially invited to attend %s.",
		"casual":   "We'd love for you to join us at %s!",
		"friendly": "We'd be delighted to have you join us at %s!",
		"urgent":   "Please save the date: you're invited to %s.",
	},
	fallback: "You're cordially invited to %s!",
}

var eventClosingLine = phraseTable{
	phrases: map[string]string{
		"casual":   "Can't wait to see you there!",
		"friendly": "Can't wait to see you there!",
		"exciting": "We can't wait to celebrate with you!",
		"urgent":   "Please respond as soon as possible so we can finalize arrangements.",
	},
	fallback: "We look forward to your attendance.",
}

var eventSignOff = phraseTable{
	phrases: map[string]string{
		"formal":   "Sincerely",
		"casual":   "Cheers",
		"friendly": "Warm regards",
	},
	fallback: "Best regards",
}

func eventInvitation(v Values) string {
	l := newLetter("You're Invited: " + v.Get("eventName", "Special Event") + " - " + v.Get("eventDate", "Date TBD"))

	l.add("Dear " + v.Get("recipientName", "Guest") + ",")
	l.add(fmt.Sprintf(eventOpener.pick(v["tone"]), v.Clause("eventName", "our upcoming event")))
	l.block(
		"Date: "+v.Get("eventDate", "TBD"),
		"Time: "+v.Get("eventTime", "TBD"),
		"Location: "+v.Get("eventLocation", "TBD"),
		eventTypeLine(v),
	)
	l.add(v.Sentence("eventPurpose", "Join us for an exciting event where you can connect with others and enjoy great activities."))
	l.add(v.Sentence("rsvpInstructions", "Please RSVP by replying to this email or contacting us directly."))
	if v.Has("specialRequirements") {
		l.add("Please note: " + v.Sentence("specialRequirements", ""))
	}
	l.add(eventClosingLine.pick(v["tone"]))
	l.block(eventSignOff.pick(v["tone"])+",", v.Get("hostName", "Event Host"))

	return l.String()
}

func eventTypeLine(v Values) string {
	if !v.Has("eventType") {
		return ""
	}
	return "Event Type: " + v.Get("eventType", "")
}
