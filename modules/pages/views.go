package pages

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	webnotifications "github.com/dmitrymomot/orderdesk/modules/notifications"
	"github.com/dmitrymomot/orderdesk/pkg/apiclient"
	"github.com/dmitrymomot/orderdesk/pkg/routes"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

func esc(s string) string { return templ.EscapeString(s) }

// fragment adapts a builder function into a component.
func fragment(build func(b *strings.Builder)) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		build(&b)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// layout wraps body in the application shell: title, navigation and the
// toast container fed by the notification stream.
func layout(route routes.Route, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="pt-BR"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, `<title>%s</title>`, esc(routes.PageTitle(route)))
		b.WriteString(`<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/@mdi/font@7.4.47/css/materialdesignicons.min.css">`)
		fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, datastarScript)
		b.WriteString(`</head><body><nav class="app-nav"><ul>`)
		for _, r := range routes.Nav() {
			class := ""
			if r.Name == route.Name {
				class = ` class="active" aria-current="page"`
			}
			fmt.Fprintf(&b, `<li%s><a href="%s"><i class="mdi %s"></i> %s</a></li>`,
				class, routes.URL(r.Name), r.Meta.Icon, esc(r.Meta.Title))
		}
		b.WriteString(`</ul></nav><main>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}
		if err := webnotifications.Container().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func heading(b *strings.Builder, route routes.Route) {
	if route.Meta.Icon != "" {
		fmt.Fprintf(b, `<h1><i class="mdi %s"></i> %s</h1>`, route.Meta.Icon, esc(route.Meta.Title))
		return
	}
	fmt.Fprintf(b, `<h1>%s</h1>`, esc(route.Meta.Title))
}

func unavailable(b *strings.Builder) {
	b.WriteString(`<p class="empty">Não foi possível carregar os dados.</p>`)
}

type dashboardData struct {
	Products int
	Clients  int
	Orders   int
	Revenue  float64
	Failed   bool
}

func dashboardView(route routes.Route, d dashboardData) templ.Component {
	return fragment(func(b *strings.Builder) {
		heading(b, route)
		if d.Failed {
			unavailable(b)
			return
		}
		b.WriteString(`<section class="cards">`)
		card := func(name string, icon, label, value string) {
			fmt.Fprintf(b, `<a class="card" href="%s"><i class="mdi %s"></i><span class="label">%s</span><strong>%s</strong></a>`,
				routes.URL(name), icon, esc(label), esc(value))
		}
		card(routes.Products, "mdi-package-variant", "Produtos", strconv.Itoa(d.Products))
		card(routes.Clients, "mdi-account-group", "Clientes", strconv.Itoa(d.Clients))
		card(routes.Orders, "mdi-cart", "Pedidos", strconv.Itoa(d.Orders))
		card(routes.Orders, "mdi-cash", "Faturamento", money(d.Revenue))
		b.WriteString(`</section>`)
	})
}

func productsView(route routes.Route, products []apiclient.Product, failed bool) templ.Component {
	return fragment(func(b *strings.Builder) {
		heading(b, route)
		switch {
		case failed:
			unavailable(b)
		case len(products) == 0:
			b.WriteString(`<p class="empty">Nenhum produto cadastrado.</p>`)
		default:
			b.WriteString(`<table><thead><tr><th>Nome</th><th>Preço</th><th>Descrição</th></tr></thead><tbody>`)
			for _, p := range products {
				fmt.Fprintf(b, `<tr id="product-%d"><td>%s</td><td>%s</td><td>%s</td></tr>`,
					p.ID, esc(p.Name), esc(money(p.Price)), esc(p.Description))
			}
			b.WriteString(`</tbody></table>`)
		}
	})
}

func clientsView(route routes.Route, clients []apiclient.ClientRecord, failed bool) templ.Component {
	return fragment(func(b *strings.Builder) {
		heading(b, route)
		switch {
		case failed:
			unavailable(b)
		case len(clients) == 0:
			b.WriteString(`<p class="empty">Nenhum cliente cadastrado.</p>`)
		default:
			b.WriteString(`<table><thead><tr><th>Nome</th><th>Email</th><th>Telefone</th></tr></thead><tbody>`)
			for _, c := range clients {
				fmt.Fprintf(b, `<tr id="client-%d"><td>%s</td><td>%s</td><td>%s</td></tr>`,
					c.ID, esc(c.Name), esc(c.Email), esc(c.Phone))
			}
			b.WriteString(`</tbody></table>`)
		}
	})
}

func ordersView(route routes.Route, orders []apiclient.Order, failed bool) templ.Component {
	return fragment(func(b *strings.Builder) {
		heading(b, route)
		fmt.Fprintf(b, `<p><a class="button" href="%s"><i class="mdi mdi-cart-plus"></i> Novo Pedido</a></p>`,
			routes.URL(routes.OrderCreate))
		switch {
		case failed:
			unavailable(b)
		case len(orders) == 0:
			b.WriteString(`<p class="empty">Nenhum pedido registrado.</p>`)
		default:
			b.WriteString(`<table><thead><tr><th>#</th><th>Data</th><th>Cliente</th><th>Itens</th><th>Total</th><th></th></tr></thead><tbody>`)
			for _, o := range orders {
				id := strconv.FormatInt(o.ID, 10)
				fmt.Fprintf(b, `<tr id="order-%s"><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td>%s</td><td><a href="%s">Editar</a></td></tr>`,
					id, id, esc(date(o.Date)), esc(o.Customer.Name), o.ItemsCount, esc(money(o.Total)),
					routes.URL(routes.OrderEdit, id))
			}
			b.WriteString(`</tbody></table>`)
		}
	})
}

type orderForm struct {
	Order    *apiclient.Order
	Clients  []apiclient.ClientRecord
	Products []apiclient.Product
	Failed   bool
}

func orderFormView(route routes.Route, action string, f orderForm) templ.Component {
	return fragment(func(b *strings.Builder) {
		heading(b, route)
		if f.Failed {
			unavailable(b)
			return
		}

		if f.Order != nil {
			fmt.Fprintf(b, `<p class="order-summary">Pedido #%d de %s · %s</p>`,
				f.Order.ID, esc(date(f.Order.Date)), esc(money(f.Order.Total)))
			b.WriteString(`<table><thead><tr><th>Produto</th><th>Quantidade</th><th>Preço</th><th>Subtotal</th></tr></thead><tbody>`)
			for _, it := range f.Order.Items {
				fmt.Fprintf(b, `<tr id="item-%d"><td>%s</td><td>%d</td><td>%s</td><td>%s</td></tr>`,
					it.ID, esc(it.Product.Name), it.Quantity, esc(money(it.Price)), esc(money(it.Subtotal)))
			}
			b.WriteString(`</tbody></table>`)
		}

		fmt.Fprintf(b, `<form method="post" action="%s">`, esc(action))
		b.WriteString(`<label>Cliente <select name="customer_id"><option value="">Selecione</option>`)
		for _, c := range f.Clients {
			selected := ""
			if f.Order != nil && f.Order.Customer.ID == c.ID {
				selected = " selected"
			}
			fmt.Fprintf(b, `<option value="%d"%s>%s</option>`, c.ID, selected, esc(c.Name))
		}
		b.WriteString(`</select></label>`)

		b.WriteString(`<label>Produto <select name="product_id"><option value="">Selecione</option>`)
		for _, p := range f.Products {
			fmt.Fprintf(b, `<option value="%d">%s (%s)</option>`, p.ID, esc(p.Name), esc(money(p.Price)))
		}
		b.WriteString(`</select></label>`)
		b.WriteString(`<label>Quantidade <input type="number" name="quantity" min="1" value="1"></label>`)

		label := "Criar pedido"
		if f.Order != nil {
			label = "Salvar alterações"
		}
		fmt.Fprintf(b, `<button type="submit">%s</button></form>`, label)
	})
}

func notFoundView(route routes.Route) templ.Component {
	return fragment(func(b *strings.Builder) {
		heading(b, route)
		fmt.Fprintf(b, `<p>A página que você procura não existe.</p><p><a href="%s">Voltar ao Dashboard</a></p>`,
			routes.URL(routes.Dashboard))
	})
}
