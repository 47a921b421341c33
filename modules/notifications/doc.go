// Package notifications mounts a notification center on the HTTP router:
// a JSON API for adding, listing and dismissing toasts, and a DataStar
// server-sent event stream that keeps the browser's toast container in
// sync with the center.
//
//	r.Mount(notifications.BasePath, notifications.New(center, log).Handle())
package notifications
