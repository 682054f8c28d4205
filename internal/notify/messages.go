package notify

import "fmt"

// ItemExpiredMessage builds the mail sent to an item's owner when the hourly
// sweep marks the item expired.
func ItemExpiredMessage(itemTitle string) (subject, body string) {
	subject = fmt.Sprintf("Your listing %q has expired", itemTitle)
	body = fmt.Sprintf(
		"Your listing %q has expired.\n\nIf you want to renew the listing, sign in and continue it from your own listings.\n",
		itemTitle)
	return subject, body
}

// HoundItemFoundMessage builds the mail sent to a search hound owner when a
// matching item is created or updated. The deep link points at the configured
// UI host.
func HoundItemFoundMessage(uiHost, itemTitle, itemID string) (subject, body string) {
	subject = "Your search hound found a new listing"
	body = fmt.Sprintf(
		"Your search hound found a new listing: %s.\n\nYou can view the listing through the link below.\n\n%s/item/%s\n",
		itemTitle, uiHost, itemID)
	return subject, body
}
