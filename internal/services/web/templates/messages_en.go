package templates

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Landing and login
	message.SetString(lang, "landing.tagline", "Plan weddings without the spreadsheet sprawl. Hotels, gifts, and guest messaging in one dashboard.")
	message.SetString(lang, "landing.sign_in", "Sign in")
	message.SetString(lang, "login.heading", "Sign in to continue")
	message.SetString(lang, "login.email", "Email")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Sign in")
	message.SetString(lang, "login.error_invalid", "Invalid email or password.")

	// Navigation
	message.SetString(lang, "nav.hotels", "Hotels")
	message.SetString(lang, "nav.clients", "Clients")
	message.SetString(lang, "nav.gifts", "Gifts")
	message.SetString(lang, "nav.sms", "SMS")
	message.SetString(lang, "nav.sign_out", "Sign out")

	// Hotels landing
	message.SetString(lang, "hotels.title", "Hotel Room Blocks")
	message.Set(lang, "hotels.client_count",
		plural.Selectf(1, "%d",
			plural.One, "You have %d client",
			plural.Other, "You have %d clients"))
	message.SetString(lang, "hotels.view_clients", "View clients")
	message.SetString(lang, "hotels.fallback_pick_client", "Pick a client to see their hotel room blocks.")
	message.SetString(lang, "hotels.fallback_empty", "No clients yet. Room blocks will appear once a client is added.")
	message.SetString(lang, "hotels.empty", "No room blocks recorded for this client.")
	message.SetString(lang, "hotels.column_hotel", "Hotel")
	message.SetString(lang, "hotels.column_rooms", "Rooms")
	message.SetString(lang, "hotels.column_rate", "Nightly rate")
	message.SetString(lang, "hotels.column_cutoff", "Cutoff")
	message.SetString(lang, "hotels.column_notes", "Notes")

	// Clients
	message.SetString(lang, "clients.title", "Clients")
	message.SetString(lang, "clients.empty", "No clients yet.")
	message.SetString(lang, "clients.column_couple", "Couple")
	message.SetString(lang, "clients.column_wedding_date", "Wedding date")
	message.SetString(lang, "clients.column_pages", "Pages")

	// Gifts
	message.SetString(lang, "gifts.title", "Guest Gifts")
	message.SetString(lang, "gifts.empty", "No gifts recorded for this client.")
	message.SetString(lang, "gifts.column_guest", "Guest")
	message.SetString(lang, "gifts.column_description", "Gift")
	message.SetString(lang, "gifts.column_received", "Received")
	message.SetString(lang, "gifts.column_thank_you", "Thank-you note")
	message.SetString(lang, "gifts.thank_you_sent", "Sent")
	message.SetString(lang, "gifts.thank_you_pending", "Pending")

	// SMS
	message.SetString(lang, "sms.title", "SMS Log")
	message.SetString(lang, "sms.empty", "No messages logged for this client.")
	message.SetString(lang, "sms.stat_total", "Total")
	message.SetString(lang, "sms.stat_sent", "Sent")
	message.SetString(lang, "sms.stat_delivered", "Delivered")
	message.SetString(lang, "sms.stat_failed", "Failed")
	message.SetString(lang, "sms.stat_delivery_rate", "Delivery rate")
	message.SetString(lang, "sms.column_sent", "Sent at")
	message.SetString(lang, "sms.column_direction", "Direction")
	message.SetString(lang, "sms.column_status", "Status")
	message.SetString(lang, "sms.column_phone", "Phone")
	message.SetString(lang, "sms.column_body", "Message")

	// Shared states
	message.SetString(lang, "loading.title", "Loading")
	message.SetString(lang, "coming_soon.message", "This area is under construction. Check back soon.")
	message.SetString(lang, "error.title", "Something went wrong")
	message.SetString(lang, "error.generic", "We could not load this page.")
	message.SetString(lang, "error.retry", "Retry")
	message.SetString(lang, "not_found.title", "Page not found")
	message.SetString(lang, "not_found.message", "The page you are looking for does not exist.")
	message.SetString(lang, "not_found.back", "Back to dashboard")

	// Upstream failure kinds
	message.SetString(lang, "error.unauthorized", "Your session has expired. Sign in again to continue.")
	message.SetString(lang, "error.forbidden", "You do not have access to this page.")
	message.SetString(lang, "error.not_found", "We could not find what you were looking for.")
	message.SetString(lang, "error.unavailable", "The planner service is unavailable. Try again in a moment.")
	message.SetString(lang, "error.invalid_input", "The request could not be understood.")
}
