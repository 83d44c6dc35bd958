package catalog

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/store"
	"bakerysite/api-gateway/models"
)

type Orders struct {
	env *env
}

// Submit validates and stores a new order with status pending. Nothing is
// written when validation fails.
func (o *Orders) Submit(ctx context.Context, order models.OrderRequest) (models.OrderRequest, error) {
	const op = "SubmitOrder"
	order.ID = ""
	order.CreatedAt = nil
	order.Status = models.OrderPending
	order.CustomerName = strings.TrimSpace(order.CustomerName)
	order.PhoneNumber = strings.TrimSpace(order.PhoneNumber)
	order.DeliveryAddress = optionalPtr(order.DeliveryAddress)
	order.Notes = optionalPtr(order.Notes)
	if order.DeliveryType == models.DeliveryPickup {
		order.DeliveryAddress = nil
	}
	if err := o.env.check(op, order); err != nil {
		return models.OrderRequest{}, err
	}

	var created []models.OrderRequest
	if err := o.env.records.Insert(ctx, store.TableOrders, order, &created); err != nil {
		return models.OrderRequest{}, apperrors.WithOp(op, err)
	}
	if len(created) == 0 {
		return models.OrderRequest{}, apperrors.Store(op, "insert returned no row", nil)
	}
	o.env.logger.WithFields(logrus.Fields{
		"order_id":      created[0].ID,
		"items":         len(order.Items),
		"delivery_type": order.DeliveryType,
	}).Info("Order submitted")
	return created[0], nil
}

// List returns orders newest first.
func (o *Orders) List(ctx context.Context) ([]models.OrderRequest, error) {
	orders := []models.OrderRequest{}
	if err := o.env.records.Select(ctx, store.TableOrders, store.Query{OrderBy: "created_at"}, &orders); err != nil {
		return nil, apperrors.WithOp("ListOrders", err)
	}
	return orders, nil
}

// UpdateStatus sets any valid status; transitions are not constrained.
func (o *Orders) UpdateStatus(ctx context.Context, id, status string) error {
	const op = "UpdateOrderStatus"
	st, err := models.ParseOrderStatus(status)
	if err != nil {
		return apperrors.Validation(op, err.Error(), err)
	}
	n, err := o.env.records.Update(ctx, store.TableOrders, map[string]interface{}{"status": st}, store.Eq("id", id))
	return mustAffect(op, store.TableOrders, id, n, err)
}

func (o *Orders) Delete(ctx context.Context, id string) error {
	const op = "DeleteOrder"
	n, err := o.env.records.Delete(ctx, store.TableOrders, store.Eq("id", id))
	if err := mustAffect(op, store.TableOrders, id, n, err); err != nil {
		return err
	}
	o.env.logger.WithFields(logrus.Fields{"order_id": id}).Info("Order deleted")
	return nil
}

func optionalPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return optional(*s)
}
