package scheduling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zinyando/salon-booking-api/internal/adapters/providers/scheduling"
	"github.com/zinyando/salon-booking-api/pkg/config"
)

func TestNewSchedulingProvider(t *testing.T) {
	t.Run("uses mock without an api key", func(t *testing.T) {
		provider := scheduling.NewSchedulingProvider(&config.CalComConfig{})
		assert.IsType(t, &scheduling.MockAdapter{}, provider)
	})

	t.Run("uses cal.com with an api key", func(t *testing.T) {
		provider := scheduling.NewSchedulingProvider(&config.CalComConfig{APIKey: "cal_live_key"})
		assert.IsType(t, &scheduling.CalComAdapter{}, provider)
	})
}
