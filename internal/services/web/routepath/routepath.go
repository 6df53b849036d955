// Package routepath stores canonical HTTP paths for web dashboard modules.
package routepath

import "net/url"

const (
	Root   = "/"
	Login  = "/login"
	Logout = "/logout"
	Health = "/up"

	DashboardPrefix = "/dashboard/"
	Dashboard       = "/dashboard"

	HotelsPrefix   = "/dashboard/hotels/"
	Hotels         = "/dashboard/hotels"
	HotelsFragment = "/dashboard/hotels/fragment"

	ClientsPrefix            = "/dashboard/clients/"
	Clients                  = "/dashboard/clients"
	ClientPattern            = ClientsPrefix + "{clientID}"
	ClientHotelsPattern      = ClientsPrefix + "{clientID}/hotels"
	ClientGiftsPattern       = ClientsPrefix + "{clientID}/gifts"
	ClientSmsPattern         = ClientsPrefix + "{clientID}/sms"
	ClientSmsFragmentPattern = ClientsPrefix + "{clientID}/sms/fragment"
	ClientRestPattern        = ClientsPrefix + "{clientID}/{rest...}"
	GiftsPrefix              = "/dashboard/gifts/"
	Gifts                    = "/dashboard/gifts"
)

// Client returns the detail path for one client.
func Client(clientID string) string {
	return Clients + "/" + escapeSegment(clientID)
}

// ClientHotels returns the hotel room-block page path for one client.
func ClientHotels(clientID string) string {
	return Client(clientID) + "/hotels"
}

// ClientGifts returns the gift log page path for one client.
func ClientGifts(clientID string) string {
	return Client(clientID) + "/gifts"
}

// ClientSms returns the SMS log page path for one client.
func ClientSms(clientID string) string {
	return Client(clientID) + "/sms"
}

// ClientSmsFragment returns the deferred-load fragment path for one client's
// SMS page.
func ClientSmsFragment(clientID string) string {
	return ClientSms(clientID) + "/fragment"
}

func escapeSegment(segment string) string {
	return url.PathEscape(segment)
}
