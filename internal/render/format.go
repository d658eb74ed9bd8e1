package render

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/pkordes/travelplanner/internal/domain"
)

// Placeholder is shown wherever a date is missing or unreadable.
const Placeholder = "—"

// fallbackInitials is shown in the avatar when no user is logged in or the
// email has no usable characters.
const fallbackInitials = "TP"

const segmentSep = " • "

// FormatDate renders an ISO date as "Jun 1, 2025", or Placeholder.
func FormatDate(s string) string {
	d, ok := domain.ParseDate(s)
	if !ok {
		return Placeholder
	}
	return d.Format("Jan 2, 2006")
}

// FormatDateRange renders the start date, and the last day of the trip when
// a duration is known: "Jun 1, 2025 – Jun 5, 2025".
func FormatDateRange(start string, durationDays int) string {
	d, ok := domain.ParseDate(start)
	if !ok {
		return Placeholder
	}
	if durationDays <= 1 {
		return d.Format("Jan 2, 2006")
	}
	end := d.AddDate(0, 0, durationDays-1)
	return d.Format("Jan 2, 2006") + " – " + end.Format("Jan 2, 2006")
}

// FormatDateTime renders an event time as "Jun 2, 2025 10:00 AM", or "" when
// the value is missing or unreadable.
func FormatDateTime(s string) string {
	t, ok := domain.ParseEventTime(s)
	if !ok {
		return ""
	}
	return t.Format("Jan 2, 2006 3:04 PM")
}

// Days renders a duration in days; "day" is singular only for exactly 1.
func Days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return strconv.Itoa(n) + " days"
}

// TripCount renders the dashboard counter, e.g. "1 Trip Planned".
func TripCount(n int) string {
	if n == 1 {
		return "1 Trip Planned"
	}
	return strconv.Itoa(n) + " Trips Planned"
}

// PeopleLabel joins participant names, or says "Solo trip" when there are none.
func PeopleLabel(people []string) string {
	if len(people) == 0 {
		return "Solo trip"
	}
	return strings.Join(people, ", ")
}

// Greeting renders the navbar welcome line. The email is escaped.
func Greeting(email string) template.HTML {
	if email = strings.TrimSpace(email); email == "" {
		return "Welcome!"
	}
	return template.HTML("Welcome, <strong>" + template.HTMLEscapeString(email) + "</strong>")
}

// Initials derives the avatar text from an email address: the first
// character of every alphanumeric run in the local part, at most two,
// uppercased. "jane.doe+travel@example.com" gives "JD".
func Initials(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	segments := strings.FieldsFunc(local, func(r rune) bool { return !isASCIIAlnum(r) })

	var b strings.Builder
	for _, s := range segments {
		if b.Len() == 2 {
			break
		}
		b.WriteByte(s[0])
	}
	if b.Len() == 0 {
		return fallbackInitials
	}
	return strings.ToUpper(b.String())
}

// MemberInitials derives a member chip's avatar text from a display name:
// the first letter of up to two space-separated words, or "T".
func MemberInitials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		if len(out) == 2 {
			break
		}
		out = append(out, []rune(word)[0])
	}
	if len(out) == 0 {
		return "T"
	}
	return strings.ToUpper(string(out))
}

// TravelSubtitle renders "5h • $120"; absent segments are left out entirely.
func TravelSubtitle(it domain.TravelItem) string {
	return joinSegments(it.Duration, money(it.Cost, ""))
}

// HotelSubtitle renders "Marais • 3 nights • $120/night".
func HotelSubtitle(it domain.HotelItem) string {
	return joinSegments(it.Location, it.Duration, money(it.Cost, "/night"))
}

// EventSubtitle renders "Rue de Rivoli • Jun 2, 2025 10:00 AM • $22".
func EventSubtitle(it domain.EventItem) string {
	return joinSegments(it.Place, FormatDateTime(it.Time), money(it.Cost, ""))
}

// TravelTitle renders "NYC → LAX".
func TravelTitle(it domain.TravelItem) string {
	return it.From + " → " + it.To
}

func money(cost, suffix string) string {
	if cost = strings.TrimSpace(cost); cost == "" {
		return ""
	}
	return "$" + cost + suffix
}

func joinSegments(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, segmentSep)
}

func isASCIIAlnum(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}
