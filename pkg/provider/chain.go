package provider

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"coinwagon/models"
)

// Chain tries providers strictly in configured order. The first success
// short-circuits; providers that do not support the query are skipped
// without counting as an attempt. Order never adapts at runtime.
type Chain struct {
	providers []Provider
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

func (c *Chain) Execute(ctx context.Context, q models.Query) (models.ResolvedValue, error) {
	attempts := make([]*models.ProviderFailure, 0, len(c.providers))

	for _, p := range c.providers {
		if !p.Supports(q) {
			logrus.WithFields(logrus.Fields{"provider": p.Name(), "key": q.CacheKey()}).
				Debug("provider skipped, query unsupported")
			continue
		}

		value, err := p.Fetch(ctx, q)
		if err == nil {
			logrus.WithFields(logrus.Fields{"provider": p.Name(), "key": q.CacheKey()}).
				Debug("provider succeeded")
			return value, nil
		}

		var pf *models.ProviderFailure
		if !errors.As(err, &pf) {
			pf = failure(p.Name(), models.CauseTransient, err)
		}
		if pf.Cause == models.CauseMalformed {
			logrus.WithFields(logrus.Fields{"provider": p.Name(), "key": q.CacheKey()}).
				Warnf("provider returned malformed response: %v", pf.Err)
		} else {
			logrus.WithFields(logrus.Fields{"provider": p.Name(), "key": q.CacheKey(), "cause": pf.Cause}).
				Debugf("provider failed: %v", pf.Err)
		}
		attempts = append(attempts, pf)
	}

	return models.ResolvedValue{}, &models.AggregateFailure{Attempts: attempts}
}
