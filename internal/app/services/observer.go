package services

import (
	"context"

	"github.com/yigit/coursemanager/internal/app/rules"
)

// Observer is told about operation outcomes. Metrics and report cache
// invalidation hook in here.
type Observer interface {
	RuleViolated(operation string, code rules.Code)
	Committed(ctx context.Context, operation string)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) RuleViolated(string, rules.Code)   {}
func (NopObserver) Committed(context.Context, string) {}

// Observers fans every notification out to each member in order.
type Observers []Observer

func (o Observers) RuleViolated(operation string, code rules.Code) {
	for _, obs := range o {
		obs.RuleViolated(operation, code)
	}
}

func (o Observers) Committed(ctx context.Context, operation string) {
	for _, obs := range o {
		obs.Committed(ctx, operation)
	}
}
