package matcher

import "github.com/vinaypatil-tal/scoot-assist-chat/internal/models"

// Quick-reply category slugs offered by the chat UI. Kept as data so adding
// a shortcut is a catalog change, not a code change.
const (
	QuickBattery     = "battery"
	QuickLocation    = "location"
	QuickMaintenance = "maintenance"
	QuickDelivery    = "delivery"
	QuickSafety      = "safety"
	QuickOther       = "other"
)

var quickReplySlugs = map[string]bool{
	QuickBattery:     true,
	QuickLocation:    true,
	QuickMaintenance: true,
	QuickDelivery:    true,
	QuickSafety:      true,
	QuickOther:       true,
}

// KnownQuickReply reports whether slug is one of the predefined shortcuts.
func KnownQuickReply(slug string) bool {
	return quickReplySlugs[slug]
}

// QuickReply resolves a predefined category selection directly to an answer,
// bypassing keyword scoring entirely. The slug is looked up against the
// catalog's categories and the first active item of that category (catalog
// order) supplies the answer. "other", unmapped slugs and empty categories
// fall back to a generic prompt.
func QuickReply(slug string, catalog models.Catalog) string {
	if slug == QuickOther || !quickReplySlugs[slug] {
		return QuickReplyPrompt
	}
	for _, cat := range catalog.Categories {
		if cat.Slug != slug || !cat.IsActive {
			continue
		}
		for _, item := range catalog.Items {
			if item.CategoryID == cat.ID && item.IsActive {
				return item.Answer
			}
		}
	}
	return QuickReplyPrompt
}
