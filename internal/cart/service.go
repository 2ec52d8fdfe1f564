package cart

import (
	"context"
	"errors"
	"strings"

	"github.com/angelmondragon/booklibrary/internal/catalog"
	pkgerrors "github.com/angelmondragon/booklibrary/pkg/errors"
	"github.com/angelmondragon/booklibrary/pkg/logger"
	"github.com/angelmondragon/booklibrary/pkg/metrics"
	"github.com/shopspring/decimal"
)

// SharedSessionID keys the cart used by sessionless callers when the shared fallback is on.
const SharedSessionID = "default"

const (
	msgBookNotFound    = "Book not found"
	msgBookAdded       = "Book added to cart!"
	msgItemRemoved     = "Item removed from cart"
	msgInvalidQuantity = "Invalid quantity"
	msgQuantityUpdated = "Quantity updated"
	msgCartCleared     = "Cart cleared"
)

const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// MutationResult is returned by add, remove and clear.
type MutationResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	CartItemCount int    `json:"cartItemCount"`
}

// QuantityResult is returned by UpdateQuantity.
type QuantityResult struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	CartItemCount int             `json:"cartItemCount"`
	ItemTotal     decimal.Decimal `json:"itemTotal"`
	CartTotal     decimal.Decimal `json:"cartTotal"`
}

// CountResult is returned by CartCount.
type CountResult struct {
	Count int `json:"count"`
}

type bookLookup interface {
	ByID(id int) (catalog.Book, bool)
}

// Service exposes the per-session cart operations.
type Service interface {
	AddToCart(ctx context.Context, sessionID string, bookID, quantity int) (MutationResult, error)
	RemoveFromCart(ctx context.Context, sessionID string, bookID int) (MutationResult, error)
	UpdateQuantity(ctx context.Context, sessionID string, bookID, quantity int) (QuantityResult, error)
	ClearCart(ctx context.Context, sessionID string) (MutationResult, error)
	CartCount(ctx context.Context, sessionID string) (CountResult, error)
	GetCart(ctx context.Context, sessionID string) (*Cart, error)
}

// ServiceOptions configures NewService.
type ServiceOptions struct {
	// SharedFallback routes calls without a session id to SharedSessionID
	// instead of rejecting them. Every such caller shares one cart.
	SharedFallback bool
	Logger         *logger.Logger
	Metrics        *metrics.CartMetrics
}

type service struct {
	store          Store
	books          bookLookup
	sharedFallback bool
	logg           *logger.Logger
	metrics        *metrics.CartMetrics
}

// NewService builds a cart service over the provided store and catalog.
func NewService(store Store, books bookLookup, opts ServiceOptions) (Service, error) {
	if store == nil {
		return nil, errors.New("cart store required")
	}
	if books == nil {
		return nil, errors.New("book lookup required")
	}
	logg := opts.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		store:          store,
		books:          books,
		sharedFallback: opts.SharedFallback,
		logg:           logg,
		metrics:        opts.Metrics,
	}, nil
}

func (s *service) AddToCart(ctx context.Context, sessionID string, bookID, quantity int) (MutationResult, error) {
	const op = "add"
	key, err := s.sessionKey(sessionID)
	if err != nil {
		return MutationResult{}, s.fail(ctx, op, err)
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"session_id": key, "book_id": bookID, "quantity": quantity})

	book, ok := s.books.ByID(bookID)
	if !ok {
		return s.rejectMutation(ctx, op, key, msgBookNotFound)
	}
	if quantity < 1 {
		return s.rejectMutation(ctx, op, key, msgInvalidQuantity)
	}

	cart, err := s.store.Update(ctx, key, func(c *Cart) error {
		c.AddItem(book, quantity)
		return nil
	})
	if err != nil {
		return MutationResult{}, s.fail(ctx, op, err)
	}

	s.succeed(ctx, op, "book added to cart")
	return MutationResult{Success: true, Message: msgBookAdded, CartItemCount: cart.TotalItems()}, nil
}

func (s *service) RemoveFromCart(ctx context.Context, sessionID string, bookID int) (MutationResult, error) {
	const op = "remove"
	key, err := s.sessionKey(sessionID)
	if err != nil {
		return MutationResult{}, s.fail(ctx, op, err)
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"session_id": key, "book_id": bookID})

	cart, err := s.store.Update(ctx, key, func(c *Cart) error {
		c.RemoveItem(bookID)
		return nil
	})
	if err != nil {
		return MutationResult{}, s.fail(ctx, op, err)
	}

	s.succeed(ctx, op, "item removed from cart")
	return MutationResult{Success: true, Message: msgItemRemoved, CartItemCount: cart.TotalItems()}, nil
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID string, bookID, quantity int) (QuantityResult, error) {
	const op = "update_quantity"
	key, err := s.sessionKey(sessionID)
	if err != nil {
		return QuantityResult{}, s.fail(ctx, op, err)
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"session_id": key, "book_id": bookID, "quantity": quantity})

	if quantity < 0 {
		cart, err := s.store.Get(ctx, key)
		if err != nil {
			return QuantityResult{}, s.fail(ctx, op, err)
		}
		itemTotal := decimal.Zero
		if item, ok := cart.Item(bookID); ok {
			itemTotal = item.LineTotal()
		}
		s.logg.Debug(s.logg.WithField(ctx, "reason", msgInvalidQuantity), "cart quantity rejected")
		s.metrics.Observe(op, outcomeRejected)
		return QuantityResult{
			Message:       msgInvalidQuantity,
			CartItemCount: cart.TotalItems(),
			ItemTotal:     itemTotal,
			CartTotal:     cart.TotalPrice(),
		}, nil
	}

	cart, err := s.store.Update(ctx, key, func(c *Cart) error {
		c.UpdateQuantity(bookID, quantity)
		return nil
	})
	if err != nil {
		return QuantityResult{}, s.fail(ctx, op, err)
	}

	itemTotal := decimal.Zero
	if item, ok := cart.Item(bookID); ok {
		itemTotal = item.LineTotal()
	}

	s.succeed(ctx, op, "cart quantity updated")
	return QuantityResult{
		Success:       true,
		Message:       msgQuantityUpdated,
		CartItemCount: cart.TotalItems(),
		ItemTotal:     itemTotal,
		CartTotal:     cart.TotalPrice(),
	}, nil
}

func (s *service) ClearCart(ctx context.Context, sessionID string) (MutationResult, error) {
	const op = "clear"
	key, err := s.sessionKey(sessionID)
	if err != nil {
		return MutationResult{}, s.fail(ctx, op, err)
	}
	ctx = s.logg.WithSessionID(ctx, key)

	if _, err := s.store.Update(ctx, key, func(c *Cart) error {
		c.Clear()
		return nil
	}); err != nil {
		return MutationResult{}, s.fail(ctx, op, err)
	}

	s.succeed(ctx, op, "cart cleared")
	return MutationResult{Success: true, Message: msgCartCleared}, nil
}

func (s *service) CartCount(ctx context.Context, sessionID string) (CountResult, error) {
	cart, err := s.read(ctx, "count", sessionID)
	if err != nil {
		return CountResult{}, err
	}
	return CountResult{Count: cart.TotalItems()}, nil
}

func (s *service) GetCart(ctx context.Context, sessionID string) (*Cart, error) {
	return s.read(ctx, "get", sessionID)
}

func (s *service) read(ctx context.Context, op, sessionID string) (*Cart, error) {
	key, err := s.sessionKey(sessionID)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	cart, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, s.fail(s.logg.WithSessionID(ctx, key), op, err)
	}
	s.metrics.Observe(op, outcomeSuccess)
	return cart, nil
}

func (s *service) sessionKey(sessionID string) (string, error) {
	key := strings.TrimSpace(sessionID)
	if key != "" {
		return key, nil
	}
	if s.sharedFallback {
		return SharedSessionID, nil
	}
	return "", ErrSessionRequired
}

// rejectMutation reports a domain failure along with the unchanged cart count.
func (s *service) rejectMutation(ctx context.Context, op, key, message string) (MutationResult, error) {
	cart, err := s.store.Get(ctx, key)
	if err != nil {
		return MutationResult{}, s.fail(ctx, op, err)
	}
	s.logg.Debug(s.logg.WithField(ctx, "reason", message), "cart mutation rejected")
	s.metrics.Observe(op, outcomeRejected)
	return MutationResult{Message: message, CartItemCount: cart.TotalItems()}, nil
}

func (s *service) succeed(ctx context.Context, op, msg string) {
	s.logg.Info(ctx, msg)
	s.metrics.Observe(op, outcomeSuccess)
}

func (s *service) fail(ctx context.Context, op string, err error) error {
	s.metrics.Observe(op, outcomeError)
	if pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		s.logg.Warn(ctx, err.Error())
		return err
	}
	s.logg.Error(ctx, "cart "+op+" failed", err)
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cart operation failed")
}
