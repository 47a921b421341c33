// Package apiclient is a small JSON client for the order-management backend
// (products, clients, orders and order items).
//
//	api, err := apiclient.NewFromConfig(cfg.API,
//		apiclient.WithLogger(log),
//		apiclient.WithErrorReporter(func(ctx context.Context, err error) {
//			center.ShowError("Falha na comunicação com a API",
//				notifications.WithMessage(err.Error()))
//		}),
//	)
//	orders, err := api.Orders.List(ctx)
//
// The backend wraps some responses in an envelope ({"clients": [...]},
// {"order": {...}}) and returns others bare; each call knows its envelope
// and falls back to the bare body when the key is missing.
//
// Non-2xx responses are returned as *APIError, which matches
// ErrRequestFailed (and ErrNotFound for 404) with errors.Is.
package apiclient
