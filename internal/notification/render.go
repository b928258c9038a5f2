package notification

import (
	"fmt"
	"strings"
)

// footer closes every notification body.
const footer = "This is an automated notification from your website."

// Render builds the subject and plain-text body for an event. Field values
// are printed in a fixed order exactly as received; absent fields print as
// empty values rather than being suppressed.
func Render(e Event) Message {
	var subject string
	var b strings.Builder

	switch e.Kind() {
	case KindFirstVisit:
		subject = "New First-Time Visit to Your Website"
		b.WriteString("A first-time visitor just landed on your website.\n\n")
		writeVisitDetails(&b, e)
	case KindReturnVisit:
		subject = "Returning Visitor on Your Website"
		b.WriteString("A returning visitor is back on your website.\n\n")
		writeVisitDetails(&b, e)
	case KindOtherVisit:
		label := e.EventType
		if label == "" {
			label = "Unknown"
		}
		subject = fmt.Sprintf("Website Event: %s", label)
		fmt.Fprintf(&b, "A website event of type %q was recorded.\n\n", label)
		writeVisitDetails(&b, e)
	case KindLogin:
		subject = fmt.Sprintf("User Login (%s): %s", e.LoginType, e.UserID)
		writeEventDetails(&b, e)
		fmt.Fprintf(&b, "User ID: %s\n", e.UserID)
		fmt.Fprintf(&b, "Login Type: %s\n", e.LoginType)
	case KindOtherEvent:
		subject = fmt.Sprintf("Website Visit Notification: %s on %s", e.Event, e.Page)
		writeEventDetails(&b, e)
	}

	b.WriteString("\n" + footer + "\n")
	return Message{Subject: subject, Body: b.String()}
}

func writeVisitDetails(b *strings.Builder, e Event) {
	fmt.Fprintf(b, "Timestamp: %s\n", e.Timestamp)
	fmt.Fprintf(b, "Page: %s\n", e.Page)
	fmt.Fprintf(b, "User ID: %s\n", e.UserID)
	fmt.Fprintf(b, "Client IP: %s\n", e.ClientIP)
	fmt.Fprintf(b, "Referrer: %s\n", e.Referrer)
	fmt.Fprintf(b, "Screen Resolution: %s\n", e.ScreenResolution)
	fmt.Fprintf(b, "Browser Language: %s\n", e.BrowserLanguage)
	fmt.Fprintf(b, "Platform: %s\n", e.Platform)
	fmt.Fprintf(b, "User Agent: %s\n", e.UserAgent)
}

func writeEventDetails(b *strings.Builder, e Event) {
	fmt.Fprintf(b, "Event: %s\n", e.Event)
	fmt.Fprintf(b, "Timestamp: %s\n", e.Timestamp)
	fmt.Fprintf(b, "Page: %s\n", e.Page)
	fmt.Fprintf(b, "User Agent: %s\n", e.UserAgent)
	fmt.Fprintf(b, "Client IP: %s\n", e.ClientIP)
}
