// Package assistant answers common driver questions from a fixed script.
package assistant

import (
	"strings"
	"unicode"
)

type topic struct {
	name     string
	keywords []string
	answer   string
}

var topics = []topic{
	{
		name:     "greeting",
		keywords: []string{"hello", "hi", "hey", "morning", "evening"},
		answer:   "Hi! Ask me about driving hours, breaks, overtime, tax or NI. Type \"help\" to see what I can do.",
	},
	{
		name:     "help",
		keywords: []string{"help", "how", "use", "commands", "start"},
		answer: "Log shifts under ⏱ Time as HHMM-HHMM and submit the day when you finish. " +
			"Save pay under 💷 Pay, browse totals under 📊 History and change rates, tax, NI and week start under ⚙️ Settings.",
	},
	{
		name:     "daily",
		keywords: []string{"daily", "day", "9", "nine", "10", "ten", "driving", "limit"},
		answer: "Daily driving is limited to 9 hours. Twice a week you can extend it to 10 hours. " +
			"Weekly driving must stay under 56 hours and 90 hours across any two weeks in a row.",
	},
	{
		name:     "weekly",
		keywords: []string{"weekly", "week", "56", "fortnight", "90"},
		answer:   "You can drive up to 56 hours in a fixed week (Monday to Sunday) and no more than 90 hours in any two consecutive weeks.",
	},
	{
		name:     "break",
		keywords: []string{"break", "breaks", "rest", "45", "4.5", "stop"},
		answer: "After 4 hours 30 minutes of driving you need a 45 minute break. " +
			"It can be split into 15 minutes then 30 minutes, in that order.",
	},
	{
		name:     "rest",
		keywords: []string{"daily rest", "11", "eleven", "sleep", "overnight"},
		answer: "Daily rest is normally 11 hours, which you may reduce to 9 hours up to three times between weekly rests. " +
			"Weekly rest is 45 hours, or 24 hours reduced.",
	},
	{
		name:     "working",
		keywords: []string{"working", "time", "48", "60", "directive", "wtd"},
		answer:   "Working time averages a maximum of 48 hours a week over the reference period, and no single week may exceed 60 hours.",
	},
	{
		name:     "overtime",
		keywords: []string{"overtime", "ot", "extra", "premium"},
		answer:   "Overtime is paid at your overtime rate. Enter overtime hours separately when saving pay and set the rate under ⚙️ Settings.",
	},
	{
		name:     "tax",
		keywords: []string{"tax", "paye", "income"},
		answer: "When tax is switched on, each day's pay is taxed at your chosen flat rate (20% by default). " +
			"Records saved with tax keep their tax figures even if you switch it off later.",
	},
	{
		name:     "ni",
		keywords: []string{"ni", "national", "insurance", "nic"},
		answer:   "National Insurance is estimated at 12% of daily earnings above £34.44, the annual primary threshold spread over the year.",
	},
	{
		name:     "pay",
		keywords: []string{"pay", "wage", "wages", "earn", "earned", "money", "salary"},
		answer:   "Open 📊 History to see your pay for this week, this month or all time, with tax and NI taken off if they are switched on.",
	},
}

const fallback = "Sorry, I don't know that one yet. Try asking about driving hours, breaks, overtime, tax or NI."

// Answer picks the scripted reply whose keywords best match the question.
func Answer(question string) string {
	name, ok := Match(question)
	if !ok {
		return fallback
	}
	for _, t := range topics {
		if t.name == name {
			return t.answer
		}
	}
	return fallback
}

// Match returns the best topic for the question. Ties go to the topic listed
// first.
func Match(question string) (string, bool) {
	q := strings.ToLower(question)
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	}) {
		words[strings.TrimSuffix(w, ".")] = true
	}

	best, bestScore := "", 0
	for _, t := range topics {
		score := 0
		for _, k := range t.keywords {
			if strings.Contains(k, " ") {
				if strings.Contains(q, k) {
					score += 2
				}
			} else if words[k] {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = t.name, score
		}
	}
	return best, bestScore > 0
}
