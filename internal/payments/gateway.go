package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hallbook/internal/shared/config"
	"hallbook/pkg/logger"

	"github.com/google/uuid"
)

// simRefPrefix marks references issued by the simulated gateway. Refund
// processing skips the external call for these.
const simRefPrefix = "sim_"

// Gateway abstracts the external payment processor.
type Gateway interface {
	CreateCharge(ctx context.Context, amount float64, currency string, bookingID uuid.UUID) (string, error)
	CreateRefund(ctx context.Context, chargeRef string, amount float64) (string, error)
}

// NewGateway selects the gateway implementation. Without a configured
// processor key every charge is simulated, which keeps local and test
// environments self-contained.
func NewGateway(cfg *config.Config, log *logger.Logger) Gateway {
	if cfg.GatewayConfigured() {
		// Processor SDK integration hooks in here once credentials are
		// provisioned. Until then simulated references keep the flow
		// end-to-end testable.
		log.Warn("payment gateway key set but no processor integration is enabled, using simulated gateway")
	}
	return &simulatedGateway{currency: cfg.Payments.Currency}
}

// simulatedGateway issues deterministic-looking references without
// talking to any processor. Charges always succeed.
type simulatedGateway struct {
	currency string
}

func (g *simulatedGateway) CreateCharge(_ context.Context, amount float64, _ string, bookingID uuid.UUID) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: non-positive amount", ErrGatewayFailure)
	}
	return fmt.Sprintf("%s%d_%s", simRefPrefix, time.Now().UnixNano(), bookingID), nil
}

func (g *simulatedGateway) CreateRefund(_ context.Context, chargeRef string, amount float64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("%w: non-positive amount", ErrGatewayFailure)
	}
	return simulatedRefundRef(chargeRef), nil
}

// simulatedRefundRef mints a refund reference for a charge that never
// reached a processor.
func simulatedRefundRef(chargeRef string) string {
	return fmt.Sprintf("%sre_%d_%s", simRefPrefix, time.Now().UnixNano(), strings.TrimPrefix(chargeRef, simRefPrefix))
}

// IsSimulatedRef reports whether the reference came from the simulated
// gateway.
func IsSimulatedRef(ref string) bool {
	return strings.HasPrefix(ref, simRefPrefix)
}
