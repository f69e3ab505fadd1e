package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ferromart/internal/backend"
	"ferromart/internal/domain"
	"ferromart/internal/store"
)

// Stage tracks how far a checkout attempt got. The chain is strictly
// ordered: the bill id is needed for the order, the order id for every
// detail line.
type Stage int

const (
	StageIdle Stage = iota
	StageBillPending
	StageOrderPending
	StageDetailsPending
	StageCommitted
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageBillPending:
		return "bill_pending"
	case StageOrderPending:
		return "order_pending"
	case StageDetailsPending:
		return "details_pending"
	case StageCommitted:
		return "committed"
	}
	return "unknown"
}

var (
	ErrNotLoggedIn = errors.New("log in to complete your purchase")
	ErrEmptyCart   = errors.New("cart is empty")
)

// Error is a checkout failure annotated with the stage that was in
// flight. Records created on the backend before the failure are not
// compensated; keeping the stage makes that gap visible to callers and
// leaves room for a future retry or compensating transaction.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("checkout failed at %s: %v", e.Stage, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

type Result struct {
	OrderID int
	BillID  int
	Total   float64
}

// Free shipping for now.
const shipping = 0.0

// CheckoutService converts the cart into backend purchase records:
// bill, then order, then one order-detail per line.
type CheckoutService struct {
	Cart    *store.CartStore
	Session *store.SessionStore
	API     *backend.Client
}

func NewCheckoutService(cart *store.CartStore, session *store.SessionStore, api *backend.Client) *CheckoutService {
	return &CheckoutService{Cart: cart, Session: session, API: api}
}

// Place runs the three-call sequence. Preconditions are checked before
// any backend call. On failure the cart is left untouched.
func (s *CheckoutService) Place(ctx context.Context) (Result, error) {
	user := s.Session.Current()
	if user == nil {
		return Result{}, ErrNotLoggedIn
	}
	lines := s.Cart.Lines()
	if len(lines) == 0 {
		return Result{}, ErrEmptyCart
	}

	total := s.Cart.Subtotal() + shipping

	bill, err := s.API.CreateBill(ctx, domain.BillCreate{
		ClientID:    user.ID,
		Total:       total,
		BillNumber:  billNumber(),
		Date:        time.Now().Format("2006-01-02"),
		PaymentType: domain.PaymentTypeCash,
	})
	if err != nil {
		return Result{}, &Error{Stage: StageBillPending, Err: err}
	}

	order, err := s.API.CreateOrder(ctx, domain.OrderCreate{
		ClientID:       user.ID,
		Total:          total,
		Status:         domain.OrderStatusPending,
		DeliveryMethod: domain.DeliveryPickup,
		BillID:         bill.ID,
	})
	if err != nil {
		return Result{}, &Error{Stage: StageOrderPending, Err: err}
	}

	// The detail lines are independent of each other; create them
	// concurrently and require all of them to succeed.
	g, gctx := errgroup.WithContext(ctx)
	for _, ln := range lines {
		g.Go(func() error {
			_, err := s.API.CreateOrderDetail(gctx, domain.OrderDetailCreate{
				OrderID:   order.ID,
				ProductID: ln.Product.ID,
				Quantity:  ln.Quantity,
				Price:     ln.Product.Price,
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, &Error{Stage: StageDetailsPending, Err: err}
	}

	s.Cart.Clear()
	return Result{OrderID: order.ID, BillID: bill.ID, Total: total}, nil
}

// billNumber must be unique per attempt. A bare wall-clock reading can
// collide under rapid repeated checkouts, so a random suffix is added.
func billNumber() string {
	return fmt.Sprintf("B-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
