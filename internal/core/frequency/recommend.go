package frequency

import "mesa-decision/internal/core/domain"

// RecommendCaps suggests limits from historical performance: a higher CTR
// loosens the impression cap and a higher conversion rate loosens the click
// cap. The result is guidance only and does not change enforcement.
func (l *Ledger) RecommendCaps(perf domain.Performance) domain.RecommendedCaps {
	impressions := l.policy[domain.EventImpression].Limit
	clicks := l.policy[domain.EventClick].Limit
	ctr, conv := perf.CTR(), perf.ConversionRate()

	switch {
	case ctr >= 0.05:
		impressions += 3
	case ctr >= 0.02:
		impressions++
	case perf.Impressions > 0 && ctr < 0.005 && impressions > 1:
		impressions--
	}

	switch {
	case conv >= 0.05:
		clicks += 2
	case conv >= 0.02:
		clicks++
	}

	return domain.RecommendedCaps{
		ImpressionLimit: impressions,
		ClickLimit:      clicks,
		CTR:             ctr,
		ConversionRate:  conv,
	}
}
