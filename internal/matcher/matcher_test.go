package matcher

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

func item(question, answer string, keywords ...string) models.FAQItem {
	return models.FAQItem{
		ID:       primitive.NewObjectID(),
		Question: question,
		Answer:   answer,
		Keywords: keywords,
		IsActive: true,
	}
}

func TestMatch_UniqueKeyword(t *testing.T) {
	catalog := []models.FAQItem{
		item("Battery life", "battery answer", "battery"),
		item("GPS tracking", "gps answer", "gps"),
	}

	got := Match("my gps is not working", catalog)
	if got != "gps answer" {
		t.Errorf("expected gps answer, got %q", got)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	catalog := []models.FAQItem{
		item("Battery life", "battery answer", "Battery"),
	}

	if got := Match("BATTERY dead", catalog); got != "battery answer" {
		t.Errorf("expected battery answer, got %q", got)
	}
}

func TestMatch_LongerKeywordWins(t *testing.T) {
	// A scores 7 ("battery") on this query, B scores 19
	// ("battery replacement"); B must win even though A has two keywords.
	catalog := []models.FAQItem{
		item("Charging", "answer A", "battery", "charging"),
		item("Replacement", "answer B", "battery replacement"),
	}

	got := Match("my battery replacement is broken", catalog)
	if got != "answer B" {
		t.Errorf("expected answer B, got %q", got)
	}
}

func TestMatch_ScoreSumsAcrossKeywords(t *testing.T) {
	// A sums 7+8=15 over two hits, B scores 12 on a single longer keyword.
	catalog := []models.FAQItem{
		item("Charging", "answer A", "battery", "charging"),
		item("Not charging", "answer B", "not charging"),
	}

	got := Match("battery not charging", catalog)
	if got != "answer A" {
		t.Errorf("expected answer A, got %q", got)
	}
}

func TestMatch_TieBreaksToFirstInCatalogOrder(t *testing.T) {
	catalog := []models.FAQItem{
		item("First", "first answer", "brake"),
		item("Second", "second answer", "brake"),
	}

	got := Match("my brake squeaks", catalog)
	if got != "first answer" {
		t.Errorf("expected first answer on tie, got %q", got)
	}
}

func TestMatch_EmptyKeywordListNeverWins(t *testing.T) {
	catalog := []models.FAQItem{
		item("Browse only", "unreachable answer"),
		item("Battery", "battery answer", "battery"),
	}

	if got := Match("battery issue", catalog); got != "battery answer" {
		t.Errorf("expected battery answer, got %q", got)
	}
	if got := Match("Browse only", catalog); got == "unreachable answer" {
		t.Error("item without keywords must not win free-text scoring")
	}
}

func TestMatch_SubstringSemantics(t *testing.T) {
	// Containment is deliberate: "gps" matches inside "gpst".
	catalog := []models.FAQItem{
		item("GPS", "gps answer", "gps"),
	}

	if got := Match("gpst", catalog); got != "gps answer" {
		t.Errorf("expected substring match, got %q", got)
	}
}

func TestMatch_KeywordMatchBeatsFallbacks(t *testing.T) {
	catalog := []models.FAQItem{
		item("Battery", "battery answer", "battery"),
	}

	// "help" and "hello" are both present, but the scored match wins.
	got := Match("hello, help me with my battery", catalog)
	if got != "battery answer" {
		t.Errorf("keyword match must take precedence over fallbacks, got %q", got)
	}
}

func TestMatch_FallbackLadder(t *testing.T) {
	catalog := []models.FAQItem{
		item("Battery", "battery answer", "battery"),
	}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"help keyword", "I need help", HelpMenuResponse},
		{"support keyword", "contact support please", HelpMenuResponse},
		{"greeting hello", "hello there", GreetingResponse},
		{"greeting hi", "hi", GreetingResponse},
		{"greeting hey", "hey you", GreetingResponse},
		{"help outranks greeting", "hello I need help", HelpMenuResponse},
		{"nothing matches", "qwertyuiop", GenericResponse},
		{"empty query", "", GenericResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.query, catalog); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestMatch_EmptyCatalog(t *testing.T) {
	if got := Match("hi", nil); got != GreetingResponse {
		t.Errorf("expected greeting fallback, got %q", got)
	}
	if got := Match("asdkjhasd", nil); got != GenericResponse {
		t.Errorf("expected generic fallback, got %q", got)
	}
}

func TestMatch_AlwaysNonEmpty(t *testing.T) {
	catalogs := [][]models.FAQItem{
		nil,
		{},
		{item("No keywords", "answer")},
		{item("Battery", "battery answer", "battery")},
	}
	queries := []string{"", "battery", "help", "hi", "??!!", "asdkjhasd"}

	for _, catalog := range catalogs {
		for _, query := range queries {
			if got := Match(query, catalog); got == "" {
				t.Errorf("Match(%q) returned empty string", query)
			}
		}
	}
}

func TestMatch_Idempotent(t *testing.T) {
	catalog := []models.FAQItem{
		item("Battery", "battery answer", "battery", "charging"),
		item("GPS", "gps answer", "gps"),
	}

	first := Match("battery and gps trouble", catalog)
	second := Match("battery and gps trouble", catalog)
	if first != second {
		t.Errorf("Match not idempotent: %q vs %q", first, second)
	}
}

func TestMatch_EmptyStringKeywordIgnored(t *testing.T) {
	catalog := []models.FAQItem{
		item("Blank keyword", "blank answer", ""),
	}

	// An empty keyword is contained in every query; it must not score.
	if got := Match("anything at all", catalog); got == "blank answer" {
		t.Error("empty keyword must not produce a match")
	}
}
