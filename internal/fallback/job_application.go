package fallback

var jobInterest = phraseTable{
	phrases: map[string]string{
		"enthusiastic": "strong enthusiasm",
		"passionate":   "genuine passion",
		"confident":    "confident interest",
		"humble":       "sincere interest",
	},
	fallback: "interest",
}

var jobStrength = phraseTable{
	phrases: map[string]string{
		"enthusiastic": "enthusiasm",
		"passionate":   "passion",
		"confident":    "expertise",
		"humble":       "dedication",
	},
	fallback: "skills",
}

var jobSignOff = phraseTable{
	phrases: map[string]string{
		"professional": "Sincerely",
		"humble":       "Kind regards",
		"passionate":   "Warm regards",
	},
	fallback: "Best regards",
}

var jobMotivation = keywordTable{
	entries: []keywordPhrase{
		{"engineer", "technology and innovation"},
		{"developer", "technology and innovation"},
		{"marketing", "creative problem-solving and data-driven strategies"},
		{"manager", "leadership and strategic planning"},
		{"designer", "thoughtful, user-centered design"},
	},
	fallback: "professional growth and excellence",
}

func jobApplication(v Values) string {
	l := newLetter("Application for " + v.Get("position", "Position") + " at " + v.Get("companyName", "Your Company"))

	l.add("Dear Hiring Manager,")
	l.add("I am writing to express my " + jobInterest.pick(v["tone"]) + " in the " +
		v.Clause("position", "open") + " role at " + v.Clause("companyName", "your company") + ".")
	l.add("Drawing on "+v.Clause("relevantExperience", "my relevant professional experience")+
		", I am confident I would be a valuable addition to your team.",
		"My key skills include "+v.Clause("keySkills", "a range of technical and professional competencies")+".")
	l.add(v.Sentence("companyKnowledge", ""))
	l.add("I am particularly drawn to this opportunity because it aligns with my career goals and my passion for " +
		jobMotivation.pick(v["position"]) + ".")
	l.add("I have attached my resume for your review and would welcome the opportunity to discuss how my experience and " +
		jobStrength.pick(v["tone"]) + " can contribute to your team's success.")
	l.add("Thank you for your consideration. I look forward to hearing from you.")
	l.block(jobSignOff.pick(v["tone"])+",", v.Get("applicantName", "Your Name"))

	return l.String()
}
