package service

import (
	"time"

	"github.com/Behyna/university-finance/internal/config"
	"github.com/Behyna/university-finance/internal/model"
)

// Clock returns "now" in the finance timezone.
type Clock func() time.Time

func NewClock(cfg *config.Config) Clock {
	return Clock(cfg.Finance.Clock())
}

// Today is the calendar date of now, normalized the way stored dates are.
func (c Clock) Today() time.Time {
	return model.DateOf(c())
}
