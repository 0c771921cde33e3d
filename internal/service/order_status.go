package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/vpriyankaa/sales-admin-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentInput struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"max=50"`
	Comments      string          `json:"comments"`
	Documents     string          `json:"documents"`
}

// ChangeOrderStatus moves an order through the status machine. Leaving the
// active states reverts every line's stock effect.
func (s *orderService) ChangeOrderStatus(orderID uuid.UUID, status model.OrderStatus, comments string, actor Actor) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, validationErr("unknown order status '%s'", status)
	}

	var updated *model.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindForUpdate(tx, orderID)
		if err != nil {
			return wrapDB(err, "order")
		}
		from := order.Status
		if !model.CanTransition(from, status) {
			return validationErr("cannot change status from %s to %s", from, status)
		}

		if order.IsActive() && (status == model.StatusCancelled || status == model.StatusTrashed) {
			revert := -order.StockSign()
			for _, it := range sortedByID(order.Items) {
				if _, err := s.inventory.AdjustStock(tx, it.ItemID, revert*it.Quantity, actor); err != nil {
					return err
				}
			}
		}

		order.Status = status
		order.UpdatedBy = actor.ID
		if err := s.orderRepo.Save(tx, order); err != nil {
			return wrapDB(err, "order")
		}
		if err := s.logRepo.AppendOrderLog(tx, &model.OrderLog{
			LogBase: model.LogBase{
				Action:    fmt.Sprintf("Status changed from %s to %s.", from, status),
				Comments:  strings.TrimSpace(comments),
				CreatedBy: actor.ID,
			},
			OrderID: order.ID,
		}); err != nil {
			return wrapDB(err, "order log")
		}
		updated = order
		return nil
	})
	if err != nil {
		log.Printf("change status of order %s to %s: %v", orderID, status, err)
		return nil, err
	}

	s.publishOrder("status_changed", updated, actor,
		fmt.Sprintf("%s marked a %s order %s", actor.Name, updated.Type, updated.Status))
	return updated, nil
}

// ChangeOrderPaymentStatus force-sets the payment status. Setting paid settles
// the order in full; other values leave the amounts alone. A log entry is
// written even when the status does not change.
func (s *orderService) ChangeOrderPaymentStatus(orderID uuid.UUID, status model.PaymentStatus, actor Actor) (*model.Order, error) {
	if !model.ValidPaymentStatus(status) {
		return nil, validationErr("unknown payment status '%s'", status)
	}

	var updated *model.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindForUpdate(tx, orderID)
		if err != nil {
			return wrapDB(err, "order")
		}
		if !order.IsActive() {
			return validationErr("payment status of a %s order cannot be changed", order.Status)
		}
		from := order.PaymentStatus

		if status == model.PaymentPaid {
			order.PaidAmount = order.TotalPayable
			order.RemainingAmount = decimal.Zero
		}
		order.PaymentStatus = status
		order.UpdatedBy = actor.ID

		if err := s.orderRepo.Save(tx, order); err != nil {
			return wrapDB(err, "order")
		}
		if err := s.logRepo.AppendOrderLog(tx, &model.OrderLog{
			LogBase: model.LogBase{
				Action:    fmt.Sprintf("Payment status changed from %s to %s.", from, status),
				CreatedBy: actor.ID,
			},
			OrderID: order.ID,
		}); err != nil {
			return wrapDB(err, "order log")
		}
		updated = order
		return nil
	})
	if err != nil {
		log.Printf("change payment status of order %s to %s: %v", orderID, status, err)
		return nil, err
	}

	s.publishOrder("payment_status_changed", updated, actor,
		fmt.Sprintf("%s set payment status of a %s order to %s", actor.Name, updated.Type, updated.PaymentStatus))
	return updated, nil
}

// ChangeOrderPayment records a payment against an active order. Settling the
// remaining amount also completes the order.
func (s *orderService) ChangeOrderPayment(orderID uuid.UUID, in *PaymentInput, actor Actor) (*model.Order, error) {
	if !in.Amount.IsPositive() {
		return nil, validationErr("payment amount must be greater than zero")
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var updated *model.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.orderRepo.FindForUpdate(tx, orderID)
		if err != nil {
			return wrapDB(err, "order")
		}
		if !order.IsActive() {
			return validationErr("cannot record a payment on a %s order", order.Status)
		}
		if in.Amount.GreaterThan(order.RemainingAmount) {
			return validationErr("payment %s exceeds remaining amount %s", in.Amount.StringFixed(2), order.RemainingAmount.StringFixed(2))
		}

		order.PaidAmount = decimal.Min(order.PaidAmount.Add(in.Amount), order.TotalPayable)
		order.RemainingAmount = decimal.Max(order.TotalPayable.Sub(order.PaidAmount), decimal.Zero)
		order.PaymentStatus = model.DerivePaymentStatus(order.PaidAmount, order.RemainingAmount)
		order.UpdatedBy = actor.ID

		completed := order.RemainingAmount.IsZero() && order.Status != model.StatusCompleted
		if completed {
			order.Status = model.StatusCompleted
		}

		if err := s.orderRepo.Save(tx, order); err != nil {
			return wrapDB(err, "order")
		}
		if err := s.logRepo.AppendPaymentLog(tx, &model.PaymentLog{
			LogBase: model.LogBase{
				Action:    paymentAction(in.Amount, order),
				Comments:  strings.TrimSpace(in.Comments),
				CreatedBy: actor.ID,
			},
			OrderID:       order.ID,
			Amount:        in.Amount,
			PaymentMethod: in.PaymentMethod,
			Documents:     in.Documents,
		}); err != nil {
			return wrapDB(err, "payment log")
		}
		if completed {
			if err := s.logRepo.AppendOrderLog(tx, &model.OrderLog{
				LogBase: model.LogBase{
					Action:    fmt.Sprintf("Status changed from %s to %s.", model.StatusCreated, model.StatusCompleted),
					Comments:  "Settled in full.",
					CreatedBy: actor.ID,
				},
				OrderID: order.ID,
			}); err != nil {
				return wrapDB(err, "order log")
			}
		}
		updated = order
		return nil
	})
	if err != nil {
		log.Printf("record payment on order %s: %v", orderID, err)
		return nil, err
	}

	s.publishOrder("payment_received", updated, actor,
		fmt.Sprintf("%s recorded a payment of %s", actor.Name, in.Amount.StringFixed(2)))
	return updated, nil
}
