package payment

import (
	"fmt"

	"goodrunss/database/repository/trainer"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/account"
	"github.com/stripe/stripe-go/v76/accountlink"
	"go.uber.org/zap"
)

// ConnectService manages Stripe Connect payout accounts for trainers.
type ConnectService interface {
	OnboardTrainer(trainerID, email, refreshURL, returnURL string) (string, error)
	SyncPayoutStatus(trainerID string) (bool, error)
}

// DefaultConnectService is the production implementation.
type DefaultConnectService struct {
	Logger      *zap.Logger
	TrainerRepo trainerRepo.TrainerRepository
}

func NewConnectService(logger *zap.Logger, repo trainerRepo.TrainerRepository) *DefaultConnectService {
	return &DefaultConnectService{Logger: logger, TrainerRepo: repo}
}

// OnboardTrainer creates an Express account for the trainer if they don't
// have one yet and returns a fresh onboarding link URL.
func (s *DefaultConnectService) OnboardTrainer(trainerID, email, refreshURL, returnURL string) (string, error) {
	t, err := s.TrainerRepo.GetByID(trainerID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch trainer: %w", err)
	}
	if t == nil {
		return "", fmt.Errorf("trainer %s not found", trainerID)
	}

	accountID := t.StripeAccountID
	if accountID == "" {
		params := &stripe.AccountParams{
			Type:  stripe.String(string(stripe.AccountTypeExpress)),
			Email: stripe.String(email),
		}
		acct, err := account.New(params)
		if err != nil {
			return "", fmt.Errorf("failed to create Stripe account: %w", err)
		}
		accountID = acct.ID
		if err := s.TrainerRepo.UpdateStripeAccount(trainerID, accountID, false); err != nil {
			return "", fmt.Errorf("failed to store Stripe account: %w", err)
		}
		s.Logger.Info("Created Stripe Express account",
			zap.String("trainerID", trainerID), zap.String("accountID", accountID))
	}

	linkParams := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}
	link, err := accountlink.New(linkParams)
	if err != nil {
		return "", fmt.Errorf("failed to create onboarding link: %w", err)
	}
	return link.URL, nil
}

// SyncPayoutStatus refreshes whether the trainer's account can receive payouts.
func (s *DefaultConnectService) SyncPayoutStatus(trainerID string) (bool, error) {
	t, err := s.TrainerRepo.GetByID(trainerID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch trainer: %w", err)
	}
	if t == nil || t.StripeAccountID == "" {
		return false, fmt.Errorf("trainer %s has no Stripe account", trainerID)
	}

	acct, err := account.GetByID(t.StripeAccountID, nil)
	if err != nil {
		return false, fmt.Errorf("failed to fetch Stripe account: %w", err)
	}

	enabled := acct.PayoutsEnabled
	if enabled != t.PayoutsEnabled {
		if err := s.TrainerRepo.UpdateStripeAccount(trainerID, t.StripeAccountID, enabled); err != nil {
			return enabled, fmt.Errorf("failed to update payout status: %w", err)
		}
	}
	return enabled, nil
}
