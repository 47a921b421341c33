package notifications

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/orderdesk/pkg/notifications"
)

const (
	// ContainerID is the id of the element holding the toasts.
	ContainerID = "notifications"
	// BasePath is where the module is mounted.
	BasePath = "/api/notifications"
)

var icons = map[notifications.Kind]string{
	notifications.KindSuccess: "mdi-check-circle",
	notifications.KindError:   "mdi-alert-circle",
	notifications.KindWarning: "mdi-alert",
	notifications.KindInfo:    "mdi-information",
}

// ToastList renders the toast container with items oldest first.
// Each toast carries a dismiss button that issues DELETE BasePath/{id}.
func ToastList(items []notifications.Notification) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<div id="%s" class="toast-stack" aria-live="polite">`, ContainerID)
		for _, n := range items {
			writeToast(&b, n)
		}
		b.WriteString(`</div>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Container renders an empty toast container that opens the stream on load.
func Container() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div id="%s" class="toast-stack" aria-live="polite" data-init="@get('%s/stream')"></div>`,
			ContainerID, BasePath)
		return err
	})
}

func writeToast(b *strings.Builder, n notifications.Notification) {
	role := "status"
	if n.Kind == notifications.KindError {
		role = "alert"
	}

	fmt.Fprintf(b, `<div id="toast-%s" class="toast toast-%s" role="%s">`,
		templ.EscapeString(n.ID), templ.EscapeString(string(n.Kind)), role)
	fmt.Fprintf(b, `<i class="mdi %s"></i>`, icons[n.Kind])
	b.WriteString(`<div class="toast-body">`)
	fmt.Fprintf(b, `<strong class="toast-title">%s</strong>`, templ.EscapeString(n.Title))
	if n.Message != "" {
		fmt.Fprintf(b, `<p class="toast-message">%s</p>`, templ.EscapeString(n.Message))
	}
	b.WriteString(`</div>`)
	fmt.Fprintf(b, `<button type="button" class="toast-close" aria-label="Fechar" data-on:click="@delete('%s/%s')">&times;</button>`,
		BasePath, templ.EscapeString(n.ID))
	b.WriteString(`</div>`)
}
