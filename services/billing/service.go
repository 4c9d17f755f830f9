package billing

import (
	"context"
	"encoding/json"
	"fmt"

	userRepo "onair/database/repository/user"
	"onair/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"go.uber.org/zap"
)

// Service applies Stripe billing events to DJ profiles.
type Service struct {
	Users userRepo.UserRepository
}

// HandleEvent routes a verified Stripe event. Event types we do not act on
// are acknowledged and ignored.
func (s *Service) HandleEvent(ctx context.Context, event stripe.Event) error {
	logger := utils.GetLogger()

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}
		email := sessionEmail(&session)
		if email == "" {
			logger.Warn("checkout session without customer email", zap.String("event", event.ID))
			return nil
		}
		return s.Users.SetSubscriptionActive(ctx, email, true)

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("failed to parse subscription: %w", err)
		}
		if sub.Customer == nil {
			return nil
		}
		cust, err := customer.Get(sub.Customer.ID, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch customer %s: %w", sub.Customer.ID, err)
		}
		if cust.Email == "" {
			return nil
		}
		return s.Users.SetSubscriptionActive(ctx, cust.Email, false)

	default:
		logger.Debug("ignoring stripe event", zap.String("type", string(event.Type)))
		return nil
	}
}

func sessionEmail(session *stripe.CheckoutSession) string {
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		return session.CustomerDetails.Email
	}
	return session.CustomerEmail
}
