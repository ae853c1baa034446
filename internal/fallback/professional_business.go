package fallback

var businessRelationship = phraseTable{
	phrases: map[string]string{
		"colleague":   "working",
		"manager":     "reporting",
		"client":      "client",
		"vendor":      "vendor",
		"partner":     "partnership",
		"new contact": "new",
	},
	fallback: "professional",
}

var businessTone = phraseTable{
	phrases: map[string]string{
		"professional": "professional",
		"friendly":     "friendly",
		"formal":       "formal",
		"casual":       "relaxed",
		"urgent":       "timely",
		"appreciative": "grateful",
	},
	fallback: "professional",
}

var businessClosingLine = phraseTable{
	phrases: map[string]string{
		"urgent":       "Given the time-sensitive nature of this matter, I would appreciate your prompt response.",
		"appreciative": "Thank you again for your continued support. I look forward to your response.",
		"casual":       "Let me know what you think when you get a chance.",
	},
	fallback: "Thank you for your time and consideration. I look forward to your response.",
}

var businessSignOff = phraseTable{
	phrases: map[string]string{
		"formal":       "Sincerely",
		"appreciative": "With appreciation",
		"casual":       "Cheers",
		"friendly":     "Warm regards",
	},
	fallback: "Best regards",
}

func professionalBusiness(v Values) string {
	l := newLetter(v.Get("emailType", "Business Communication") + " - " + v.Clause("purpose", "Important Matter"))

	l.add("Dear " + v.Get("recipient", "Colleague") + ",")
	l.add("I hope this email finds you well.",
		"I am writing regarding "+v.Clause("purpose", "an important business matter")+".")
	l.add(v.Get("additionalContext", ""))
	l.add("Based on our " + businessRelationship.pick(v["relationship"]) +
		" relationship, I wanted to reach out with a " + businessTone.pick(v["tone"]) +
		" approach to discuss this matter.")
	l.add(businessClosingLine.pick(v["tone"]))
	l.block(businessSignOff.pick(v["tone"])+",", v.Get("senderName", "Your Name"))

	return l.String()
}
