package catalog_test

import (
	"context"
	"errors"
	"testing"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/models"
)

var errUnreachable = errors.New("(PGRST001) could not connect to database")

func order() models.OrderRequest {
	return models.OrderRequest{
		CustomerName: "Andrei",
		PhoneNumber:  "0711 222 333",
		Items: []models.OrderItem{
			{ID: "p1", Name: "Cozonac", Quantity: 2, Type: models.ItemProduct},
			{ID: "c1", Name: "Tort aniversar", Quantity: 1, Type: models.ItemCustom},
		},
		NeededBy:     "2024-03-08",
		DeliveryType: models.DeliveryPickup,
	}
}

func TestSubmitOrder_DeliveryWithoutAddress(t *testing.T) {
	c, ms := newCatalog(t)
	o := order()
	o.DeliveryType = models.DeliveryDelivery
	_, err := c.Orders.Submit(context.Background(), o)
	wantKind(t, err, apperrors.KindValidation)

	blank := "   "
	o.DeliveryAddress = &blank
	_, err = c.Orders.Submit(context.Background(), o)
	wantKind(t, err, apperrors.KindValidation)

	if ms.Writes() != 0 {
		t.Errorf("Writes = %d, want 0", ms.Writes())
	}
}

func TestSubmitOrder_Validation(t *testing.T) {
	cases := map[string]func(o *models.OrderRequest){
		"no items":      func(o *models.OrderRequest) { o.Items = nil },
		"zero quantity": func(o *models.OrderRequest) { o.Items[0].Quantity = 0 },
		"bad item type": func(o *models.OrderRequest) { o.Items[1].Type = "gift" },
		"no name":       func(o *models.OrderRequest) { o.CustomerName = " " },
		"no phone":      func(o *models.OrderRequest) { o.PhoneNumber = "" },
		"bad date":      func(o *models.OrderRequest) { o.NeededBy = "8 martie" },
		"bad delivery":  func(o *models.OrderRequest) { o.DeliveryType = "drone" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c, ms := newCatalog(t)
			o := order()
			mutate(&o)
			_, err := c.Orders.Submit(context.Background(), o)
			wantKind(t, err, apperrors.KindValidation)
			if ms.Writes() != 0 {
				t.Errorf("Writes = %d, want 0", ms.Writes())
			}
		})
	}
}

func TestSubmitOrder(t *testing.T) {
	ctx := context.Background()
	c, _ := newCatalog(t)

	o := order()
	addr := "Str. Morii 4"
	o.DeliveryAddress = &addr
	o.Status = models.OrderCompleted
	created, err := c.Orders.Submit(ctx, o)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if created.ID == "" || created.Status != models.OrderPending {
		t.Errorf("created = %+v", created)
	}
	if created.DeliveryAddress != nil {
		t.Errorf("pickup order kept address %q", *created.DeliveryAddress)
	}
	if len(created.Items) != 2 || created.Items[0].Name != "Cozonac" || created.Items[1].Name != "Tort aniversar" {
		t.Errorf("items = %+v", created.Items)
	}

	d := order()
	d.DeliveryType = models.DeliveryDelivery
	d.DeliveryAddress = &addr
	if _, err := c.Orders.Submit(ctx, d); err != nil {
		t.Fatalf("Submit delivery: %v", err)
	}

	orders, err := c.Orders.List(ctx)
	if err != nil || len(orders) != 2 {
		t.Fatalf("List = %d, %v", len(orders), err)
	}
	if orders[0].DeliveryType != models.DeliveryDelivery {
		t.Error("orders should be newest first")
	}
}

func TestOrderStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	c, ms := newCatalog(t)
	created, _ := c.Orders.Submit(ctx, order())

	for _, st := range []string{"completed", "pending", "contacted"} {
		if err := c.Orders.UpdateStatus(ctx, created.ID, st); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", st, err)
		}
	}
	if got := ms.Rows(store.TableOrders)[0]["status"]; got != "contacted" {
		t.Errorf("status = %v", got)
	}
	wantKind(t, c.Orders.UpdateStatus(ctx, created.ID, "shipped"), apperrors.KindValidation)
	wantKind(t, c.Orders.UpdateStatus(ctx, "missing", "pending"), apperrors.KindNotFound)

	if err := c.Orders.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	wantKind(t, c.Orders.Delete(ctx, created.ID), apperrors.KindNotFound)
}

func TestListOrders_Unreachable(t *testing.T) {
	c, ms := newCatalog(t)
	ms.SetHook(failOn("select", store.TableOrders, errUnreachable))
	_, err := c.Orders.List(context.Background())
	wantKind(t, err, apperrors.KindConnection)
}
