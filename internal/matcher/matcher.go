// Package matcher selects a single FAQ answer for a free-text user query.
// It is pure: the catalog is passed in explicitly, nothing is read from
// ambient state and nothing is written anywhere, so it is safe to call
// concurrently from any number of requests.
package matcher

import (
	"strings"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

const (
	GreetingResponse = "Hi! I'm your ElectroScoot support assistant. How can I help you today? " +
		"You can ask me about battery issues, locating your scooter, maintenance, deliveries or safety."

	HelpMenuResponse = "Here's what I can help you with:\n" +
		"• Battery — charging, range and battery health\n" +
		"• Find My Scooter — location tracking and GPS\n" +
		"• Maintenance — service, repairs and upkeep\n" +
		"• Order Status — track your delivery\n" +
		"• Safety — report safety issues or accidents\n" +
		"Just describe your problem, or pick one of the quick questions above."

	GenericResponse = "I couldn't find a specific answer to that. Try rephrasing your question " +
		"with a few more details (for example \"scooter won't charge\" or \"where is my order\"), " +
		"browse the FAQ categories, or ask for a manual review and our team will get back to you."

	QuickReplyPrompt = "Could you provide more details about your specific issue so I can assist you better?"

	FileReceivedResponse = "Thank you for uploading the file! I've received it and our support " +
		"team will review it to better assist you."
)

var helpKeywords = []string{"help", "support"}

var greetingKeywords = []string{"hello", "hi", "hey"}

// Match maps one free-text query to exactly one answer string.
//
// Every keyword of every catalog item is tested as a case-insensitive
// substring of the query; a hit adds the keyword's length to that item's
// score, so longer, more specific keywords outweigh short generic ones.
// The first item with the strictly highest total wins. A query that scores
// nothing anywhere falls through to the canned responses, checked in fixed
// order: help menu, greeting, generic.
func Match(query string, catalog []models.FAQItem) string {
	q := strings.ToLower(query)

	bestIdx := -1
	bestScore := 0
	for i := range catalog {
		score := 0
		for _, kw := range catalog[i].Keywords {
			k := strings.ToLower(kw)
			if k == "" {
				continue
			}
			// Plain substring containment, no word boundaries: "gps"
			// matches inside "gpst". Kept for compatibility with the
			// authored keyword lists.
			if strings.Contains(q, k) {
				score += len(k)
			}
		}
		// Strict > keeps the first max: ties resolve to catalog order.
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		return catalog[bestIdx].Answer
	}

	for _, kw := range helpKeywords {
		if strings.Contains(q, kw) {
			return HelpMenuResponse
		}
	}
	for _, kw := range greetingKeywords {
		if strings.Contains(q, kw) {
			return GreetingResponse
		}
	}
	return GenericResponse
}
