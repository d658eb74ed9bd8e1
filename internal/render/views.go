package render

import (
	"html/template"

	"github.com/pkordes/travelplanner/internal/domain"
)

// Page identifiers, written to <body data-page="..."> and used to pick the
// template.
const (
	PageLanding    = "landing"
	PageLogin      = "login"
	PageDashboard  = "dashboard"
	PageTripDetail = "trip-detail"
	PageAbout      = "about"
	PageError      = "error"
)

// Layout is the state shared by every page: navbar greeting, avatar, theme.
type Layout struct {
	PageID    string
	Title     string
	LoggedIn  bool
	Email     string
	Greeting  template.HTML
	Initials  string
	LightMode bool
}

// NewLayout builds the navbar state for the given user. ok is false when
// nobody is logged in.
func NewLayout(pageID, title string, user domain.User, ok bool, lightMode bool) Layout {
	l := Layout{PageID: pageID, Title: title, Greeting: Greeting(""), Initials: fallbackInitials, LightMode: lightMode}
	if ok && user.Email != "" {
		l.LoggedIn = true
		l.Email = user.Email
		l.Greeting = Greeting(user.Email)
		l.Initials = Initials(user.Email)
	}
	return l
}

// SimpleView is the data for pages that only need the layout.
type SimpleView struct {
	Layout
}

// LoginView is the data for the login page.
type LoginView struct {
	Layout
	Email string
	Error string
}

// ErrorView is the data for the generic failure page.
type ErrorView struct {
	Layout
	Message string
}

// TripCard is one card in the dashboard grid.
type TripCard struct {
	ID     string
	Name   string
	Date   string
	People string
}

// TripForm echoes the add-trip form back after a failed submission.
type TripForm struct {
	Name     string
	Date     string
	Duration string
	Type     string
	Notes    string
	People   []string
	Error    string
}

// DashboardView is the data for the dashboard page.
type DashboardView struct {
	Layout
	Trips []TripCard
	Count string
	Form  TripForm
}

// NewDashboardView projects the already-sorted trips into dashboard cards.
func NewDashboardView(layout Layout, trips []domain.Trip, form TripForm) DashboardView {
	cards := make([]TripCard, 0, len(trips))
	for _, t := range trips {
		cards = append(cards, TripCard{
			ID:     t.ID,
			Name:   t.Name,
			Date:   FormatDate(t.StartDate),
			People: PeopleLabel(t.People),
		})
	}
	if len(form.People) == 0 {
		form.People = []string{""}
	}
	return DashboardView{
		Layout: layout,
		Trips:  cards,
		Count:  TripCount(len(trips)),
		Form:   form,
	}
}

// MemberChip is one participant on the detail page.
type MemberChip struct {
	Name     string
	Initials string
}

// ItemRow is one line item on the detail page.
type ItemRow struct {
	TripID   string
	ID       string
	Kind     domain.ItemKind
	Title    string
	Subtitle string
}

// ItemForm echoes a failed line-item submission back into its modal.
type ItemForm struct {
	Kind   domain.ItemKind
	Values map[string]string
	Error  string
}

// ValueFor returns a previously submitted field value when it belongs to the
// given section.
func (f ItemForm) ValueFor(kind, name string) string {
	if string(f.Kind) != kind {
		return ""
	}
	return f.Values[name]
}

// ErrorFor returns the form error when it belongs to the given section.
func (f ItemForm) ErrorFor(kind string) string {
	if string(f.Kind) != kind {
		return ""
	}
	return f.Error
}

// DetailView is the data for the trip-detail page. Found is false when the
// requested trip does not exist, which renders the empty state.
type DetailView struct {
	Layout
	Found    bool
	TripID   string
	Name     string
	Type     string
	Dates    string
	Duration string
	Notes    string
	Members  []MemberChip
	Travel   []ItemRow
	Hotels   []ItemRow
	Events   []ItemRow
	Form     ItemForm
}

// NewDetailView projects a trip into the detail page. Pass found=false for
// the empty state.
func NewDetailView(layout Layout, trip domain.Trip, found bool, form ItemForm) DetailView {
	v := DetailView{Layout: layout, Found: found, Form: form}
	if !found {
		return v
	}

	v.TripID = trip.ID
	v.Name = trip.Name
	v.Type = trip.Type
	v.Dates = FormatDateRange(trip.StartDate, trip.Duration)
	if trip.Duration > 0 {
		v.Duration = Days(trip.Duration)
	}
	v.Notes = trip.Notes

	for _, p := range trip.People {
		v.Members = append(v.Members, MemberChip{Name: p, Initials: MemberInitials(p)})
	}
	for _, it := range trip.TravelItems {
		v.Travel = append(v.Travel, ItemRow{TripID: trip.ID, ID: string(it.ID), Kind: domain.KindTravel, Title: TravelTitle(it), Subtitle: TravelSubtitle(it)})
	}
	for _, it := range trip.HotelItems {
		v.Hotels = append(v.Hotels, ItemRow{TripID: trip.ID, ID: string(it.ID), Kind: domain.KindHotel, Title: it.Name, Subtitle: HotelSubtitle(it)})
	}
	for _, it := range trip.EventItems {
		v.Events = append(v.Events, ItemRow{TripID: trip.ID, ID: string(it.ID), Kind: domain.KindEvent, Title: it.Name, Subtitle: EventSubtitle(it)})
	}
	return v
}
