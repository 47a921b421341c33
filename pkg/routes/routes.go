package routes

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Route names.
const (
	Dashboard   = "dashboard"
	Products    = "products"
	Clients     = "clients"
	Orders      = "orders"
	OrderCreate = "order-create"
	OrderEdit   = "order-edit"
	NotFound    = "not-found"
)

// AppTitle is the suffix of every page title.
const AppTitle = "Sistema de Pedidos"

// Meta is the display metadata attached to a route.
type Meta struct {
	Title        string
	Icon         string
	ShowInNav    bool
	RequiresAuth bool
}

// Route is a named page of the application. Pattern uses chi syntax;
// the not-found route has no pattern.
type Route struct {
	Name    string
	Pattern string
	Meta    Meta
}

var table = []Route{
	{Name: Dashboard, Pattern: "/", Meta: Meta{Title: "Dashboard", Icon: "mdi-view-dashboard", ShowInNav: true}},
	{Name: Products, Pattern: "/products", Meta: Meta{Title: "Produtos", Icon: "mdi-package-variant", ShowInNav: true}},
	{Name: Clients, Pattern: "/clients", Meta: Meta{Title: "Clientes", Icon: "mdi-account-group", ShowInNav: true}},
	{Name: Orders, Pattern: "/orders", Meta: Meta{Title: "Pedidos", Icon: "mdi-cart", ShowInNav: true}},
	{Name: OrderCreate, Pattern: "/orders/new", Meta: Meta{Title: "Novo Pedido", Icon: "mdi-cart-plus"}},
	{Name: OrderEdit, Pattern: "/orders/{id}/edit", Meta: Meta{Title: "Editar Pedido", Icon: "mdi-cart-edit"}},
	{Name: NotFound, Meta: Meta{Title: "Página não encontrada"}},
}

// All returns every route in declaration order, not-found last.
func All() []Route {
	return slices.Clone(table)
}

// Nav returns the routes shown in the navigation menu, in declaration order.
func Nav() []Route {
	var nav []Route
	for _, r := range table {
		if r.Meta.ShowInNav {
			nav = append(nav, r)
		}
	}
	return nav
}

// ByName looks a route up by name.
func ByName(name string) (Route, bool) {
	i := slices.IndexFunc(table, func(r Route) bool { return r.Name == name })
	if i < 0 {
		return Route{}, false
	}
	return table[i], true
}

// PageTitle returns the browser title for r.
func PageTitle(r Route) string {
	if r.Meta.Title == "" {
		return AppTitle
	}
	return r.Meta.Title + " - " + AppTitle
}

// URL builds the path of the named route, filling {placeholders} in order.
// It panics on an unknown name or a wrong number of params, both of which
// are programming errors.
func URL(name string, params ...string) string {
	r, ok := ByName(name)
	if !ok || r.Pattern == "" {
		panic(fmt.Sprintf("routes: no path for route %q", name))
	}

	segments := strings.Split(r.Pattern, "/")
	next := 0
	for i, seg := range segments {
		if !strings.HasPrefix(seg, "{") {
			continue
		}
		if next >= len(params) {
			panic(fmt.Sprintf("routes: missing param %s for route %q", seg, name))
		}
		segments[i] = url.PathEscape(params[next])
		next++
	}
	if next != len(params) {
		panic(fmt.Sprintf("routes: route %q takes %d params, got %d", name, next, len(params)))
	}
	return strings.Join(segments, "/")
}
