// Package handler holds the response helpers shared by the HTTP modules:
// the JSON envelope ({"data": ...} / {"error": {...}}), HTML rendering of
// templ components, and DataStar server-sent event streams.
//
//	func list(w http.ResponseWriter, r *http.Request) {
//		_ = handler.JSON(w, http.StatusOK, center.Notifications())
//	}
//
//	func stream(w http.ResponseWriter, r *http.Request) {
//		s := handler.NewStream(w, r)
//		for {
//			select {
//			case <-s.Done():
//				return
//			case ev := <-events:
//				_ = s.Patch(views.ToastList(ev.Snapshot), "#notifications", handler.PatchOuter)
//			}
//		}
//	}
package handler
