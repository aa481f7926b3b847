package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"localserve.backend/internal/domain/entities"
	domainerrors "localserve.backend/internal/domain/errors"
	"localserve.backend/internal/domain/repositories"
	"localserve.backend/pkg/logger"
	"localserve.backend/pkg/utils"
)

// PaymentUsecase handles mock payment orders and their reconciliation
type PaymentUsecase struct {
	paymentRepo repositories.PaymentRepository
	bookingRepo repositories.BookingRepository
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(paymentRepo repositories.PaymentRepository, bookingRepo repositories.BookingRepository) *PaymentUsecase {
	return &PaymentUsecase{paymentRepo: paymentRepo, bookingRepo: bookingRepo}
}

// CreateOrder records a pending payment for a booking and returns a mock
// gateway order. The amount is taken from the request as-is; it is not
// cross-checked against the booking total.
func (u *PaymentUsecase) CreateOrder(ctx context.Context, userID uuid.UUID, input *entities.CreatePaymentOrderInput) (*entities.CreatePaymentOrderResponse, error) {
	method := entities.PaymentMethod(input.PaymentMethod)
	if !method.Valid() {
		return nil, domainerrors.BadRequest("invalid payment method")
	}

	now := time.Now()
	payment := &entities.Payment{
		ID:        utils.GenerateUUIDv7(),
		BookingID: input.BookingID,
		UserID:    userID,
		Amount:    input.Amount,
		Method:    method,
		Status:    entities.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return &entities.CreatePaymentOrderResponse{
		OrderID:  payment.ID,
		Amount:   payment.Amount,
		Currency: "INR",
		Mock:     true,
		Message:  "mock payment order created",
	}, nil
}

// Verify settles a payment: the payment is marked completed and the
// booking the caller names is marked completed and paid regardless of its
// current status. The booking id comes from the request, not from the
// payment record, and a missing booking still settles the payment.
func (u *PaymentUsecase) Verify(ctx context.Context, input *entities.VerifyPaymentInput) error {
	payment, err := u.paymentRepo.GetByID(ctx, input.PaymentID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("payment not found")
		}
		return err
	}

	if err := u.paymentRepo.UpdateStatus(ctx, payment.ID, entities.PaymentStatusCompleted); err != nil {
		return err
	}

	if err := u.bookingRepo.UpdateStatus(ctx, input.BookingID, entities.BookingStatusCompleted); err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		logger.WithContext(ctx).Warn("payment settled for missing booking",
			zap.String("payment_id", payment.ID.String()),
			zap.String("booking_id", input.BookingID.String()))
		return nil
	}
	if err := u.bookingRepo.MarkPaid(ctx, input.BookingID); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return nil
}
