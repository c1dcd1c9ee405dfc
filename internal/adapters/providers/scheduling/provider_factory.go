package scheduling

import (
	"github.com/zinyando/salon-booking-api/internal/domain/providers"
	"github.com/zinyando/salon-booking-api/pkg/config"
)

// NewSchedulingProvider selects the scheduling backend. Without an API key
// there is no way to book against Cal.com, so dev runs get the mock. There
// is deliberately no automatic fallback from a failing real provider: the
// booking call is not idempotent and must not be silently replayed
// elsewhere.
func NewSchedulingProvider(cfg *config.CalComConfig) providers.SchedulingProvider {
	if cfg.APIKey == "" {
		return NewMockAdapter()
	}
	return NewCalComAdapter(cfg)
}
