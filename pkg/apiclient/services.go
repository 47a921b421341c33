package apiclient

import (
	"context"
	"net/http"
	"strconv"
)

func id(v int64) string { return strconv.FormatInt(v, 10) }

// ProductService calls /products. Products are returned without envelope.
type ProductService struct{ c *Client }

func (s *ProductService) List(ctx context.Context) ([]Product, error) {
	var out []Product
	err := s.c.do(ctx, http.MethodGet, "/products", nil, &out, "")
	return out, err
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (Product, error) {
	var out Product
	err := s.c.do(ctx, http.MethodPost, "/products", in, &out, "")
	return out, err
}

func (s *ProductService) Update(ctx context.Context, productID int64, in ProductPatch) (Product, error) {
	var out Product
	err := s.c.do(ctx, http.MethodPut, "/products/"+id(productID), in, &out, "")
	return out, err
}

func (s *ProductService) Delete(ctx context.Context, productID int64) error {
	return s.c.do(ctx, http.MethodDelete, "/products/"+id(productID), nil, nil, "")
}

// ClientService calls /clients. Lists come under "clients" next to
// pagination data; single clients under "client" or bare.
type ClientService struct{ c *Client }

func (s *ClientService) List(ctx context.Context) ([]ClientRecord, error) {
	var out []ClientRecord
	err := s.c.do(ctx, http.MethodGet, "/clients", nil, &out, "clients")
	return out, err
}

func (s *ClientService) Get(ctx context.Context, clientID int64) (ClientRecord, error) {
	var out ClientRecord
	err := s.c.do(ctx, http.MethodGet, "/clients/"+id(clientID), nil, &out, "client")
	return out, err
}

func (s *ClientService) Create(ctx context.Context, in ClientInput) (ClientRecord, error) {
	var out ClientRecord
	err := s.c.do(ctx, http.MethodPost, "/clients", in, &out, "client")
	return out, err
}

func (s *ClientService) Update(ctx context.Context, clientID int64, in ClientPatch) (ClientRecord, error) {
	var out ClientRecord
	err := s.c.do(ctx, http.MethodPut, "/clients/"+id(clientID), in, &out, "client")
	return out, err
}

func (s *ClientService) Delete(ctx context.Context, clientID int64) error {
	return s.c.do(ctx, http.MethodDelete, "/clients/"+id(clientID), nil, nil, "")
}

// OrderService calls /orders. Orders come under "orders" / "order";
// items of the nested routes come bare.
type OrderService struct{ c *Client }

func (s *OrderService) List(ctx context.Context) ([]Order, error) {
	var out []Order
	err := s.c.do(ctx, http.MethodGet, "/orders", nil, &out, "orders")
	return out, err
}

func (s *OrderService) Get(ctx context.Context, orderID int64) (Order, error) {
	var out Order
	err := s.c.do(ctx, http.MethodGet, "/orders/"+id(orderID), nil, &out, "order")
	return out, err
}

func (s *OrderService) Create(ctx context.Context, in OrderInput) (Order, error) {
	var out Order
	err := s.c.do(ctx, http.MethodPost, "/orders", in, &out, "order")
	return out, err
}

func (s *OrderService) Update(ctx context.Context, orderID int64, in OrderUpdate) (Order, error) {
	var out Order
	err := s.c.do(ctx, http.MethodPut, "/orders/"+id(orderID), in, &out, "order")
	return out, err
}

func (s *OrderService) Delete(ctx context.Context, orderID int64) error {
	return s.c.do(ctx, http.MethodDelete, "/orders/"+id(orderID), nil, nil, "")
}

func (s *OrderService) CreateItem(ctx context.Context, orderID int64, in ItemInput) (OrderItem, error) {
	var out OrderItem
	err := s.c.do(ctx, http.MethodPost, "/orders/"+id(orderID)+"/items", in, &out, "")
	return out, err
}

func (s *OrderService) UpdateItem(ctx context.Context, orderID, itemID int64, in ItemInput) (OrderItem, error) {
	var out OrderItem
	err := s.c.do(ctx, http.MethodPut, "/orders/"+id(orderID)+"/items/"+id(itemID), in, &out, "")
	return out, err
}

func (s *OrderService) DeleteItem(ctx context.Context, orderID, itemID int64) error {
	return s.c.do(ctx, http.MethodDelete, "/orders/"+id(orderID)+"/items/"+id(itemID), nil, nil, "")
}

// OrderItemService calls /order-items. Items come under "item" or bare.
type OrderItemService struct{ c *Client }

func (s *OrderItemService) Create(ctx context.Context, in OrderItemInput) (OrderItem, error) {
	var out OrderItem
	err := s.c.do(ctx, http.MethodPost, "/order-items", in, &out, "item")
	return out, err
}

func (s *OrderItemService) Update(ctx context.Context, itemID int64, in OrderItemUpdate) (OrderItem, error) {
	var out OrderItem
	err := s.c.do(ctx, http.MethodPut, "/order-items/"+id(itemID), in, &out, "item")
	return out, err
}

func (s *OrderItemService) Delete(ctx context.Context, itemID int64) error {
	return s.c.do(ctx, http.MethodDelete, "/order-items/"+id(itemID), nil, nil, "")
}
