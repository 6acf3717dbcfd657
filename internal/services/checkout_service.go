package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
	"busbook/internal/upstream"
	"busbook/internal/utils"
)

// PaymentInitiator creates a hosted checkout session upstream.
type PaymentInitiator interface {
	CreateCheckoutSession(ctx context.Context, token string, req upstream.CheckoutRequest) (string, error)
}

// CheckoutService guards and performs the one payment-session request per
// checkout attempt. No retries; a failed attempt must be re-triggered by the
// user.
type CheckoutService struct {
	Payments    PaymentInitiator
	CheckoutURL string // hosted checkout page template, one %s for the session id
	RequestID   string
}

// InitiateCheckout validates the selection before any network call, creates
// the checkout session, and resolves the provider redirect URL. The amount
// sent upstream is the per-passenger fare; the provider multiplies by
// quantity.
func (s CheckoutService) InitiateCheckout(ctx context.Context, sess domain.Session, quote models.FareQuote, busID, sourceName, destName string) (models.CheckoutSession, error) {
	if !sess.Authenticated() {
		return models.CheckoutSession{}, domain.UnauthenticatedError{}
	}

	source := strings.TrimSpace(sourceName)
	dest := strings.TrimSpace(destName)
	if source == "" || dest == "" || quote.TotalFare <= 0 {
		return models.CheckoutSession{}, domain.ValidationError{
			Field: "selection",
			Msg:   "select boarding and destination stops with a positive fare",
		}
	}
	if strings.TrimSpace(busID) == "" {
		return models.CheckoutSession{}, domain.ValidationError{Field: "busId", Msg: "bus id is required"}
	}

	req := upstream.CheckoutRequest{
		Amount:        quote.PerPassengerFare,
		Qty:           quote.Quantity,
		BusID:         busID,
		StartingPoint: source,
		EndingPoint:   dest,
		UserID:        sess.UserID,
	}

	sessionID, err := s.Payments.CreateCheckoutSession(ctx, sess.Token, req)
	if err != nil {
		utils.LogEvent(s.RequestID, "checkout", "initiate", "session creation failed: "+err.Error())
		return models.CheckoutSession{}, err
	}

	redirect, err := s.redirectURL(sessionID)
	if err != nil {
		utils.LogEvent(s.RequestID, "checkout", "redirect", "unusable redirect target: "+err.Error())
		return models.CheckoutSession{}, domain.PaymentError{Stage: domain.PaymentStageRedirect, Err: err}
	}

	utils.LogEvent(s.RequestID, "checkout", "initiate", "session="+sessionID+" bus="+busID)
	return models.CheckoutSession{
		SessionID:     sessionID,
		Amount:        quote.PerPassengerFare,
		Quantity:      quote.Quantity,
		BusID:         busID,
		StartingPoint: source,
		EndingPoint:   dest,
		UserID:        sess.UserID,
		RedirectURL:   redirect,
	}, nil
}

func (s CheckoutService) redirectURL(sessionID string) (string, error) {
	tmpl := strings.TrimSpace(s.CheckoutURL)
	if tmpl == "" || !strings.Contains(tmpl, "%s") {
		return "", fmt.Errorf("checkout url template is not configured")
	}
	target := fmt.Sprintf(tmpl, url.PathEscape(sessionID))
	u, err := url.Parse(target)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported redirect scheme %q", u.Scheme)
	}
	return target, nil
}
