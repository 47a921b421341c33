// Package notifications provides the in-process store of transient UI
// notifications (toasts) shown by the order desk.
//
// A Center holds an ordered list of active notifications, oldest first.
// Notifications are immutable once added and leave the list in exactly one
// of three ways: an explicit Remove, ClearAll, or automatic expiry after
// their timeout.
//
// # Basic Usage
//
//	center := notifications.Default()
//
//	id := center.ShowSuccess("Produto salvo")
//	center.ShowError("Falha ao salvar pedido", notifications.WithMessage(err.Error()))
//	center.ShowInfo("Sincronizando", notifications.WithoutExpiry())
//
//	// user dismissed the toast
//	center.Remove(id)
//
// # Timeouts
//
// Success, warning and info notifications expire after DefaultTimeout (5s),
// errors after DefaultErrorTimeout (8s). A positive timeout overrides the
// default; NoExpiry (or WithTimeout(0)) keeps the notification until it is
// removed. Removing an id that is gone is a no-op, so a late expiry timer
// never disturbs the list.
//
// # Observing Changes
//
// Renderers call Subscribe and receive an Event with a fresh snapshot after
// every mutation:
//
//	sub := center.Subscribe(ctx)
//	defer sub.Close()
//
//	for ev := range sub.Events() {
//	    render(ev.Snapshot)
//	}
//
// A slow subscriber loses intermediate events but always receives the
// latest one.
//
// # Process-wide Instance
//
// Default lazily creates a single Center shared by every consumer in the
// process. Tests and embedded uses can create independent centers with New.
package notifications
