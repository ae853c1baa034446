package fallback

// outreachVariant is one of the mini-templates selected by outreachType.
type outreachVariant struct {
	subject func(v Values) string
	opening func(v Values) string
	body    func(v Values) string
}

var outreachVariants = map[string]outreachVariant{
	"customer": {
		subject: func(v Values) string {
			if v.Has("companyName") {
				return "A Quick Idea for " + v.Get("companyName", "")
			}
			return "A Quick Idea from " + senderCompany(v)
		},
		opening: func(v Values) string {
			return "I'm " + senderName(v) + " from " + senderCompany(v) +
				", and I'm reaching out with " + recipientContext(v, "you") + " in mind."
		},
		body: func(v Values) string {
			return joinNonEmpty([]string{
				v.Sentence("valueProposition", "We help our customers save time and get better results."),
				v.Sentence("credibilityBuilder", ""),
				"I'd welcome the chance to show you the return this could deliver.",
			}, " ")
		},
	},
	"partner": {
		subject: func(v Values) string {
			if v.Has("companyName") {
				return "Partnership Opportunity - " + senderCompany(v) + " and " + v.Get("companyName", "")
			}
			return "Partnership Opportunity with " + senderCompany(v)
		},
		opening: func(v Values) string {
			opening := "I'm " + senderName(v) + " from " + senderCompany(v) +
				". I'm reaching out because I see a real opportunity for us to create value together"
			if ctx := recipientContext(v, ""); ctx != "" {
				opening += ", especially given " + ctx
			}
			return opening + "."
		},
		body: func(v Values) string {
			return joinNonEmpty([]string{
				v.Sentence("valueProposition", "Our offerings complement each other well."),
				v.Sentence("credibilityBuilder", ""),
				"Working together, we could reach new customers and share what each of us does best.",
			}, " ")
		},
	},
	"investor": {
		subject: func(v Values) string {
			return "Investment Opportunity - " + senderCompany(v)
		},
		opening: func(v Values) string {
			return "I'm " + senderName(v) + ", and I lead " + senderCompany(v) +
				". Given " + recipientContext(v, "your track record") +
				", I believe we could be a compelling fit for your portfolio."
		},
		body: func(v Values) string {
			return joinNonEmpty([]string{
				v.Sentence("valueProposition", "We are addressing a large and growing market."),
				v.Sentence("credibilityBuilder", "We have built strong early traction and are growing quickly."),
				"We are raising to accelerate that growth, and I would value your perspective.",
			}, " ")
		},
	},
	"professional contact": {
		subject: func(v Values) string {
			return "Introduction - " + senderName(v) + " from " + senderCompany(v)
		},
		opening: func(v Values) string {
			return "I'm " + senderName(v) + " from " + senderCompany(v) +
				". I've been following " + recipientContext(v, "your work") +
				" and would love to connect."
		},
		body: func(v Values) string {
			return joinNonEmpty([]string{
				v.Sentence("valueProposition", ""),
				v.Sentence("credibilityBuilder", ""),
				"I'm always keen to exchange ideas with people doing interesting work.",
			}, " ")
		},
	},
}

var callToAction = phraseTable{
	phrases: map[string]string{
		"schedule a 15-minute call": "Would you be available for a brief 15-minute call next week?",
		"brief 20-minute demo":      "I'd love to show you a brief 20-minute demo of how this could work for you.",
		"coffee meeting":            "Would you be interested in meeting for coffee to discuss this further?",
		"send detailed proposal":    "If this sounds interesting, I'd be happy to send over a detailed proposal.",
		"connect on linkedin":       "I'd love to connect with you on LinkedIn to continue the conversation.",
		"share case study":          "I'd be glad to share a case study showing the results we've achieved.",
		"quick product tour":        "Would you be open to a quick product tour at a time that suits you?",
		"exploratory conversation":  "Would you be open to a short exploratory conversation to see if there's a fit?",
	},
	fallback: "Would you be interested in learning more?",
}

var outreachSignOff = phraseTable{
	phrases: map[string]string{
		"consultative": "Kind regards",
		"enthusiastic": "Cheers",
		"direct":       "Regards",
		"friendly":     "Warm regards",
		"executive":    "Respectfully",
	},
	fallback: "Best regards",
}

func coldOutreach(v Values) string {
	variant, ok := outreachVariants[v.Lower("outreachType")]
	if !ok {
		variant = outreachVariants["professional contact"]
	}

	l := newLetter(variant.subject(v))
	l.add("Hi " + v.Get("recipientName", "there") + ",")
	l.add(v.Sentence("connectionPoint", ""))
	l.add(variant.opening(v))
	l.add(variant.body(v))
	if v.Has("industryContext") {
		l.add("Given your background in " + v.Clause("industryContext", "") + ", I think this could be especially relevant.")
	}
	if v.Has("recipientInterest") {
		l.add("I believe this could help with " + v.Clause("recipientInterest", "") + ".")
	}
	l.add(outreachCallToAction(v))
	l.block(outreachSignOff.pick(v["tone"])+",", v.Get("senderName", "Your Name"), v.Get("senderCompany", "Your Company"))

	return l.String()
}

func outreachCallToAction(v Values) string {
	if p, ok := callToAction.lookup(v["callToAction"]); ok {
		return p
	}
	if v.Has("callToAction") {
		return "Would you be interested in " + lowerFirst(v.Clause("callToAction", "")) + "?"
	}
	return callToAction.fallback
}

// recipientContext describes the recipient's role and company, or def for
// outreach to an individual.
func recipientContext(v Values, def string) string {
	role, company := v.Clause("recipientRole", ""), v.Clause("companyName", "")
	switch {
	case role != "" && company != "":
		return "your work as " + role + " at " + company
	case company != "":
		return "your team at " + company
	case role != "":
		return "your work as " + role
	default:
		return def
	}
}

func senderName(v Values) string    { return v.Clause("senderName", "Your Name") }
func senderCompany(v Values) string { return v.Clause("senderCompany", "Your Company") }
