package notification

// Recognized event type values. Anything else falls into a generic branch.
const (
	EventTypeFirstVisit  = "first_time_website_visit"
	EventTypeReturnVisit = "returning_website_visit"
	EventUserLogin       = "user_login"
)

// Kind identifies one of the closed set of recognized website events.
type Kind int

const (
	// KindOtherVisit is a visit-taxonomy event with an unrecognized or absent type.
	KindOtherVisit Kind = iota
	// KindFirstVisit is a first-time website visit.
	KindFirstVisit
	// KindReturnVisit is a returning-visitor website visit.
	KindReturnVisit
	// KindLogin is a login-taxonomy user_login event.
	KindLogin
	// KindOtherEvent is a login-taxonomy event other than user_login.
	KindOtherEvent
)

// Event is one website event as posted by the tracking snippet. Every field
// is optional; absent fields decode to the empty string and are rendered
// exactly as received, with no validation or reformatting.
type Event struct {
	EventType        string `json:"eventType"`
	Event            string `json:"event"`
	Timestamp        string `json:"timestamp"`
	Page             string `json:"page"`
	UserID           string `json:"userId"`
	UserAgent        string `json:"userAgent"`
	ClientIP         string `json:"clientIp"`
	Referrer         string `json:"referrer"`
	ScreenResolution string `json:"screenResolution"`
	BrowserLanguage  string `json:"browserLanguage"`
	Platform         string `json:"platform"`
	LoginType        string `json:"loginType"`
}

// Kind classifies the event. The visit taxonomy keyed on eventType takes
// precedence; the login taxonomy keyed on event applies only when eventType
// is absent. A payload carrying neither key classifies as KindOtherVisit.
func (e Event) Kind() Kind {
	if e.EventType != "" || e.Event == "" {
		switch e.EventType {
		case EventTypeFirstVisit:
			return KindFirstVisit
		case EventTypeReturnVisit:
			return KindReturnVisit
		}
		return KindOtherVisit
	}

	if e.Event == EventUserLogin {
		return KindLogin
	}
	return KindOtherEvent
}
