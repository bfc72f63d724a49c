package usecase

import (
	"context"

	"vetrox-backend/pkg/notification"

	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, email, mobile string) error
	BookConsultation(ctx context.Context, email string) error
}

type orderService struct {
	sender notification.Sender
	log    *zap.Logger
}

func NewOrderService(sender notification.Sender, log *zap.Logger) OrderService {
	return &orderService{
		sender: sender,
		log:    log,
	}
}

// PlaceOrder sends the order confirmation email, plus an SMS when the
// caller supplied a mobile number.
func (s *orderService) PlaceOrder(ctx context.Context, email, mobile string) error {
	err := s.sender.SendEmail(ctx, email,
		"Your Order is Confirmed",
		"Thank you for your order! Your order has been successfully placed.")
	if err != nil {
		s.log.Error("Failed to send order confirmation email", zap.Error(err), zap.String("email", email))
		return ErrDeliveryFailed
	}

	if mobile != "" {
		err := s.sender.SendSMS(ctx, mobile,
			"Your order is confirmed. Thank you for your order! Your order has been successfully placed.")
		if err != nil {
			s.log.Error("Failed to send order confirmation SMS", zap.Error(err), zap.String("mobile", mobile))
			return ErrDeliveryFailed
		}
	}

	s.log.Info("Order confirmation sent", zap.String("email", email))
	return nil
}

// BookConsultation sends the consultation confirmation email.
func (s *orderService) BookConsultation(ctx context.Context, email string) error {
	err := s.sender.SendEmail(ctx, email,
		"Your Consulting Booking is Confirmed",
		"Thank you for booking a consultation! Your appointment has been successfully scheduled.")
	if err != nil {
		s.log.Error("Failed to send consultation confirmation", zap.Error(err), zap.String("email", email))
		return ErrDeliveryFailed
	}

	s.log.Info("Consultation confirmation sent", zap.String("email", email))
	return nil
}
