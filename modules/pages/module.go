package pages

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/orderdesk/handler"
	"github.com/dmitrymomot/orderdesk/pkg/apiclient"
	"github.com/dmitrymomot/orderdesk/pkg/logger"
	"github.com/dmitrymomot/orderdesk/pkg/notifications"
	"github.com/dmitrymomot/orderdesk/pkg/routes"
)

// Module renders the pages of the route table. Backend failures are
// already reported by the API client; pages fall back to an empty state.
type Module struct {
	api    *apiclient.Client
	center *notifications.Center
	logger *slog.Logger
}

// New creates the pages module.
func New(api *apiclient.Client, center *notifications.Center, log *slog.Logger) *Module {
	if log == nil {
		log = logger.Discard()
	}
	return &Module{api: api, center: center, logger: log.With(logger.Component("pages"))}
}

// Handle returns a router serving every page plus the order form posts.
// Unknown paths render the not-found page with status 404.
func (m *Module) Handle() http.Handler {
	r := chi.NewRouter()
	r.Use(routes.TitleGuard)

	r.Get(pattern(routes.Dashboard), m.dashboard)
	r.Get(pattern(routes.Products), m.products)
	r.Get(pattern(routes.Clients), m.clients)
	r.Get(pattern(routes.Orders), m.orders)
	r.Get(pattern(routes.OrderCreate), m.newOrder)
	r.Post(pattern(routes.OrderCreate), m.createOrder)
	r.Get(pattern(routes.OrderEdit), m.editOrder)
	r.Post(pattern(routes.OrderEdit), m.updateOrder)
	r.NotFound(m.notFound)

	return r
}

func pattern(name string) string {
	r, _ := routes.ByName(name)
	return r.Pattern
}

func (m *Module) render(w http.ResponseWriter, r *http.Request, status int, body templ.Component) {
	route, ok := routes.FromContext(r.Context())
	if !ok {
		route = routes.Match(r.URL.Path)
	}
	if err := handler.HTML(w, r, status, layout(route, body), "body"); err != nil {
		m.logger.WarnContext(r.Context(), "failed to render page",
			logger.Route(route.Name), logger.Error(err))
	}
}

func current(r *http.Request) routes.Route {
	route, _ := routes.FromContext(r.Context())
	return route
}

func (m *Module) dashboard(w http.ResponseWriter, r *http.Request) {
	var d dashboardData
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		products, err := m.api.Products.List(ctx)
		d.Products = len(products)
		return err
	})
	g.Go(func() error {
		clients, err := m.api.Clients.List(ctx)
		d.Clients = len(clients)
		return err
	})
	g.Go(func() error {
		orders, err := m.api.Orders.List(ctx)
		d.Orders = len(orders)
		for _, o := range orders {
			d.Revenue += o.Total
		}
		return err
	})

	d.Failed = g.Wait() != nil
	m.render(w, r, http.StatusOK, dashboardView(current(r), d))
}

func (m *Module) products(w http.ResponseWriter, r *http.Request) {
	products, err := m.api.Products.List(r.Context())
	m.render(w, r, http.StatusOK, productsView(current(r), products, err != nil))
}

func (m *Module) clients(w http.ResponseWriter, r *http.Request) {
	clients, err := m.api.Clients.List(r.Context())
	sortClients(clients)
	m.render(w, r, http.StatusOK, clientsView(current(r), clients, err != nil))
}

func (m *Module) orders(w http.ResponseWriter, r *http.Request) {
	orders, err := m.api.Orders.List(r.Context())
	m.render(w, r, http.StatusOK, ordersView(current(r), orders, err != nil))
}

func (m *Module) newOrder(w http.ResponseWriter, r *http.Request) {
	form := m.loadForm(r, nil)
	m.render(w, r, http.StatusOK, orderFormView(current(r), r.URL.Path, form))
}

func (m *Module) editOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		m.notFound(w, r)
		return
	}

	order, err := m.api.Orders.Get(r.Context(), id)
	if errors.Is(err, apiclient.ErrNotFound) {
		m.notFound(w, r)
		return
	}
	if err != nil {
		m.render(w, r, http.StatusBadGateway, orderFormView(current(r), r.URL.Path, orderForm{Failed: true}))
		return
	}

	form := m.loadForm(r, &order)
	m.render(w, r, http.StatusOK, orderFormView(current(r), r.URL.Path, form))
}

func (m *Module) createOrder(w http.ResponseWriter, r *http.Request) {
	in, ok := parseLine(r)
	if !ok || in.customerID == 0 || in.productID == 0 {
		m.center.ShowWarning("Dados incompletos", notifications.WithMessage("Selecione o cliente, o produto e a quantidade."))
		m.rerender(w, r, nil)
		return
	}

	products, err := m.api.Products.List(r.Context())
	if err != nil {
		m.rerender(w, r, nil)
		return
	}
	i := slices.IndexFunc(products, func(p apiclient.Product) bool { return p.ID == in.productID })
	if i < 0 {
		m.center.ShowWarning("Produto não encontrado")
		m.rerender(w, r, nil)
		return
	}

	order, err := m.api.Orders.Create(r.Context(), apiclient.OrderInput{
		CustomerID: in.customerID,
		Items: []apiclient.OrderLine{{
			ProductID: in.productID,
			Quantity:  in.quantity,
			Price:     products[i].Price,
		}},
	})
	if err != nil {
		m.rerender(w, r, nil)
		return
	}

	m.center.ShowSuccess("Pedido criado com sucesso", notifications.WithMessage("Pedido #"+strconv.FormatInt(order.ID, 10)))
	http.Redirect(w, r, routes.URL(routes.Orders), http.StatusSeeOther)
}

func (m *Module) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		m.notFound(w, r)
		return
	}

	in, ok := parseLine(r)
	if !ok {
		m.center.ShowWarning("Dados inválidos", notifications.WithMessage("Verifique a quantidade informada."))
		m.rerender(w, r, &apiclient.Order{ID: id})
		return
	}

	if in.customerID != 0 {
		if _, err := m.api.Orders.Update(r.Context(), id, apiclient.OrderUpdate{
			ClientID: strconv.FormatInt(in.customerID, 10),
		}); err != nil {
			m.rerender(w, r, &apiclient.Order{ID: id})
			return
		}
	}
	if in.productID != 0 {
		if _, err := m.api.Orders.CreateItem(r.Context(), id, apiclient.ItemInput{
			ProductID: strconv.FormatInt(in.productID, 10),
			Quantity:  in.quantity,
		}); err != nil {
			m.rerender(w, r, &apiclient.Order{ID: id})
			return
		}
	}

	m.center.ShowSuccess("Pedido atualizado com sucesso")
	http.Redirect(w, r, routes.URL(routes.OrderEdit, strconv.FormatInt(id, 10)), http.StatusSeeOther)
}

func (m *Module) notFound(w http.ResponseWriter, r *http.Request) {
	route, _ := routes.ByName(routes.NotFound)
	ctx := routes.WithContext(r.Context(), route)
	w.Header().Set(routes.TitleHeader, routes.PageTitle(route))
	m.render(w, r.WithContext(ctx), http.StatusNotFound, notFoundView(route))
}

// rerender shows the order form again after a failed submission,
// reloading the order being edited when there is one.
func (m *Module) rerender(w http.ResponseWriter, r *http.Request, order *apiclient.Order) {
	if order != nil {
		if fresh, err := m.api.Orders.Get(r.Context(), order.ID); err == nil {
			order = &fresh
		}
	}
	form := m.loadForm(r, order)
	m.render(w, r, http.StatusUnprocessableEntity, orderFormView(current(r), r.URL.Path, form))
}

func (m *Module) loadForm(r *http.Request, order *apiclient.Order) orderForm {
	form := orderForm{Order: order}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		clients, err := m.api.Clients.List(ctx)
		sortClients(clients)
		form.Clients = clients
		return err
	})
	g.Go(func() error {
		products, err := m.api.Products.List(ctx)
		form.Products = products
		return err
	})
	form.Failed = g.Wait() != nil
	return form
}

type line struct {
	customerID int64
	productID  int64
	quantity   int
}

// parseLine reads the order form. Empty selects parse as zero; a present
// but malformed value, or a quantity below one, is rejected.
func parseLine(r *http.Request) (line, bool) {
	if err := r.ParseForm(); err != nil {
		return line{}, false
	}

	var l line
	var err error
	if v := r.PostFormValue("customer_id"); v != "" {
		if l.customerID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return line{}, false
		}
	}
	if v := r.PostFormValue("product_id"); v != "" {
		if l.productID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return line{}, false
		}
	}
	l.quantity = 1
	if v := r.PostFormValue("quantity"); v != "" {
		if l.quantity, err = strconv.Atoi(v); err != nil || l.quantity < 1 {
			return line{}, false
		}
	}
	return l, true
}

func orderID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
