package checkout

import (
	"context"
	"sync"

	"dukaan-be/internal/logger"
	"dukaan-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, userID string, input Input) (*Result, error)
}

type service struct {
	repo     Repository
	profiles user.Service

	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewService(repo Repository, profiles user.Service) Service {
	return &service{
		repo:     repo,
		profiles: profiles,
		inFlight: make(map[string]struct{}),
	}
}

// Checkout turns the form plus either the cart or a buy-now product into a
// pending order. The order and its items commit together; the profile upsert
// and cart clear happen after commit and cannot undo the order.
func (s *service) Checkout(ctx context.Context, userID string, input Input) (*Result, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.String("user_id", userID),
		zap.Bool("buy_now", input.BuyNow()),
	)

	if !s.acquire(userID) {
		log.Warn("rejected concurrent checkout")
		return nil, ErrCheckoutInFlight
	}
	defer s.release(userID)

	lines, err := s.resolveLines(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	var subtotal float64
	for _, l := range lines {
		subtotal += l.Price * float64(l.Quantity)
	}

	fee, ok := DeliveryFees[input.DeliveryMethod]
	if !ok {
		return nil, ErrUnknownDeliveryType
	}
	total := subtotal + fee

	address := ShippingAddress{
		FullName:       input.FullName,
		Email:          input.Email,
		Phone:          input.Phone,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
		ZipCode:        input.ZipCode,
		Country:        input.Country,
		PaymentMethod:  input.PaymentMethod,
		DeliveryMethod: input.DeliveryMethod,
		Notes:          input.Notes,
		DeliveryFee:    fee,
		Subtotal:       subtotal,
	}

	orderID, err := s.repo.CreateOrderWithItems(ctx, userID, total, address, lines)
	if err != nil {
		return nil, err
	}

	// Contact details from the form keep the profile current. Losing this
	// write must not lose the order.
	if err := s.profiles.UpsertCheckoutProfile(ctx, user.UpsertProfileParams{
		UserID:      userID,
		Email:       input.Email,
		FullName:    input.FullName,
		PhoneNumber: input.Phone,
	}); err != nil {
		log.Warn("profile upsert after checkout failed", zap.Error(err))
	}

	if !input.BuyNow() {
		if err := s.repo.ClearCart(ctx, userID); err != nil {
			log.Error("failed to clear cart after checkout",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
	}

	log.Info("checkout complete",
		zap.String("order_id", orderID),
		zap.Float64("total", total),
	)

	return &Result{
		OrderID:     orderID,
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Total:       total,
	}, nil
}

func (s *service) resolveLines(ctx context.Context, userID string, input Input) ([]Line, error) {
	if input.BuyNow() {
		if input.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		l, err := s.repo.GetProductLine(ctx, input.ProductID, input.Quantity)
		if err != nil {
			return nil, err
		}
		return []Line{*l}, nil
	}

	lines, err := s.repo.GetCartLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	return lines, nil
}

func (s *service) acquire(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[userID]; busy {
		return false
	}
	s.inFlight[userID] = struct{}{}
	return true
}

func (s *service) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, userID)
}
