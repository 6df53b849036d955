// Package clients mounts the client picker and the per-client hotel, gift,
// and SMS pages.
package clients

import (
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"

	module "github.com/aislehq/aisle/internal/services/web/module"
	apperrors "github.com/aislehq/aisle/internal/services/web/platform/errors"
	"github.com/aislehq/aisle/internal/services/web/platform/httpx"
	webi18n "github.com/aislehq/aisle/internal/services/web/platform/i18n"
	"github.com/aislehq/aisle/internal/services/web/platform/pagerender"
	"github.com/aislehq/aisle/internal/services/web/platform/weberror"
	"github.com/aislehq/aisle/internal/services/web/routepath"
	"github.com/aislehq/aisle/internal/services/web/templates"
)

// smsLogLimit caps how many log entries render on the SMS page.
const smsLogLimit = 50

// Module serves the client pages under /dashboard/clients/.
type Module struct{}

// New returns the clients module.
func New() *Module {
	return &Module{}
}

// ID identifies the module in composition wiring.
func (m *Module) ID() string { return "clients" }

// Mount wires the client routes.
func (m *Module) Mount(deps module.Dependencies) (module.Mount, error) {
	h := &handler{deps: deps}

	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.ClientsPrefix+"{$}", h.list)
	mux.HandleFunc(http.MethodGet+" "+routepath.ClientPattern, h.detail)
	mux.HandleFunc(http.MethodGet+" "+routepath.ClientHotelsPattern, h.hotels)
	mux.HandleFunc(http.MethodGet+" "+routepath.ClientGiftsPattern, h.gifts)
	mux.HandleFunc(http.MethodGet+" "+routepath.ClientSmsPattern, h.sms)
	mux.HandleFunc(http.MethodGet+" "+routepath.ClientSmsFragmentPattern, h.smsFragment)
	mux.HandleFunc(routepath.ClientRestPattern, h.notFound)

	return module.Mount{Prefix: routepath.ClientsPrefix, Handler: mux}, nil
}

type handler struct {
	deps module.Dependencies
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	account, ok := h.resolveAccount(r)
	if !ok {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	token, _ := h.deps.ResolveToken(r)

	clients, err := h.deps.DirectoryClient.ListClients(r.Context(), token, account.OrgID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	rows := make([]templates.ClientRow, 0, len(clients))
	for _, client := range clients {
		rows = append(rows, templates.ClientRow{
			CoupleNames: client.CoupleNames,
			WeddingDate: formatDate(client.WeddingDate),
			HotelsURL:   routepath.ClientHotels(client.ID),
			GiftsURL:    routepath.ClientGifts(client.ID),
			SmsURL:      routepath.ClientSms(client.ID),
		})
	}
	h.writePage(w, r, templates.T(loc, "clients.title"), templates.NavClients, templates.ClientsList(loc, rows))
}

// detail has no page of its own; it forwards to the client's hotels page.
func (h *handler) detail(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.ClientHotels(r.PathValue("clientID")))
}

func (h *handler) hotels(w http.ResponseWriter, r *http.Request) {
	client, token, ok := h.resolveClient(w, r)
	if !ok {
		return
	}
	blocks, err := h.deps.HotelClient.ListRoomBlocks(r.Context(), token, client.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	rows := make([]templates.RoomBlockRow, 0, len(blocks))
	for _, block := range blocks {
		rows = append(rows, templates.RoomBlockRow{
			HotelName:   block.HotelName,
			RoomCount:   block.RoomCount,
			NightlyRate: formatMoney(block.NightlyRateCents),
			CutoffDate:  formatDate(block.CutoffDate),
			Notes:       block.Notes,
		})
	}
	title := templates.T(loc, "hotels.title")
	fragment := clientPage(title, client.CoupleNames, templates.RoomBlocksTable(loc, rows))
	h.writePage(w, r, title, templates.NavClients, fragment)
}

func (h *handler) gifts(w http.ResponseWriter, r *http.Request) {
	client, token, ok := h.resolveClient(w, r)
	if !ok {
		return
	}
	gifts, err := h.deps.GiftClient.ListGifts(r.Context(), token, client.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	rows := make([]templates.GiftRow, 0, len(gifts))
	for _, gift := range gifts {
		rows = append(rows, templates.GiftRow{
			GuestName:    gift.GuestName,
			Description:  gift.Description,
			ReceivedAt:   formatDate(gift.ReceivedAt),
			ThankYouSent: gift.ThankYouSent,
		})
	}
	title := templates.T(loc, "gifts.title")
	fragment := clientPage(title, client.CoupleNames, templates.GiftsTable(loc, rows))
	h.writePage(w, r, title, templates.NavClients, fragment)
}

// sms renders the page shell with a skeleton; stats and the log arrive via
// the fragment endpoint so first paint never blocks on the planner.
func (h *handler) sms(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.resolveAccount(r); !ok {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	title := templates.T(loc, "sms.title")
	fragment := templ.Join(
		templates.ClientPageHeading(title, ""),
		templates.SkeletonLoader(loc, routepath.ClientSmsFragment(r.PathValue("clientID"))),
	)
	h.writePage(w, r, title, templates.NavClients, fragment)
}

func (h *handler) smsFragment(w http.ResponseWriter, r *http.Request) {
	client, token, ok := h.resolveClient(w, r)
	if !ok {
		return
	}
	stats, err := h.deps.SmsClient.SmsStats(r.Context(), token, client.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	messages, err := h.deps.SmsClient.ListSmsMessages(r.Context(), token, client.ID, smsLogLimit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	loc := webi18n.Printer(webi18n.ResolveTag(r, h.deps.ResolveLanguage))
	rows := make([]templates.SmsRow, 0, len(messages))
	for _, message := range messages {
		rows = append(rows, templates.SmsRow{
			PhoneNumber: message.PhoneNumber,
			Body:        message.Body,
			Direction:   message.Direction,
			Status:      message.Status,
			SentAt:      formatDateTime(message.SentAt),
		})
	}
	title := templates.T(loc, "sms.title")
	// The shell already carries the page heading; the fragment swaps in only
	// the deferred content.
	fragment := templ.Join(
		templates.SmsStatsCards(loc, templates.SmsStatsView{
			Total:        stats.Total,
			Sent:         stats.Sent,
			Delivered:    stats.Delivered,
			Failed:       stats.Failed,
			DeliveryRate: formatRate(stats.DeliveryRate),
		}),
		templates.SmsLogTable(loc, rows))
	h.writePage(w, r, title, templates.NavClients, fragment)
}

func (h *handler) notFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, h.deps)
}

func (h *handler) resolveAccount(r *http.Request) (module.Account, bool) {
	if h.deps.ResolveAccount == nil {
		return module.Account{}, false
	}
	return h.deps.ResolveAccount(r)
}

// resolveClient loads the addressed client, writing the response itself when
// the lookup fails. Cross-tenant IDs surface as not found upstream.
func (h *handler) resolveClient(w http.ResponseWriter, r *http.Request) (module.Client, string, bool) {
	if _, ok := h.resolveAccount(r); !ok {
		httpx.WriteRedirect(w, r, routepath.Login)
		return module.Client{}, "", false
	}
	token, _ := h.deps.ResolveToken(r)
	client, err := h.deps.DirectoryClient.GetClient(r.Context(), token, r.PathValue("clientID"))
	if err != nil {
		h.writeError(w, r, err)
		return module.Client{}, "", false
	}
	return client, token, true
}

func (h *handler) writePage(w http.ResponseWriter, r *http.Request, title string, activeNav string, fragment templ.Component) {
	page := pagerender.ModulePage{
		Title:     title,
		ActiveNav: activeNav,
		Fragment:  fragment,
	}
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.KindOf(err) == apperrors.KindUnauthorized {
		httpx.WriteRedirect(w, r, routepath.Login)
		return
	}
	weberror.WriteModuleError(w, r, err, h.deps)
}

func clientPage(title string, coupleNames string, content ...templ.Component) templ.Component {
	components := append([]templ.Component{templates.ClientPageHeading(title, coupleNames)}, content...)
	return templ.Join(components...)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02")
}

func formatDateTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02 15:04")
}

func formatMoney(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func formatRate(rate float64) string {
	return fmt.Sprintf("%.0f%%", rate*100)
}
