package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-decision/internal/core/domain"
)

var seedStrategies = []domain.BidStrategy{
	domain.BidStrategyManual,
	domain.BidStrategyAutoCPC,
	domain.BidStrategyAutoCPM,
	domain.BidStrategyTargetCPA,
	domain.BidStrategyPredictive,
}

var seedUnits = []struct {
	name   string
	format domain.AdFormat
	w, h   int
}{
	{"leaderboard", domain.FormatBanner, 728, 90},
	{"sidebar", domain.FormatBanner, 300, 250},
	{"preroll", domain.FormatVideo, 640, 360},
	{"feed", domain.FormatNative, 0, 0},
}

// Seed inserts demo data: one advertiser with five campaigns of ten ads each,
// and one publisher site with four ad units. It runs in a single transaction
// and is a no-op when organizations already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM organizations)`).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}

		var advertiser, publisher int64
		if err := tx.QueryRow(ctx, `INSERT INTO organizations (name, type)
VALUES ('Demo Advertiser', 'advertiser') RETURNING id`).Scan(&advertiser); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, `INSERT INTO organizations (name, type)
VALUES ('Demo Publisher', 'publisher') RETURNING id`).Scan(&publisher); err != nil {
			return err
		}

		var site int64
		if err := tx.QueryRow(ctx, `INSERT INTO sites (organization_id, domain)
VALUES ($1, 'news.example.com') RETURNING id`, publisher).Scan(&site); err != nil {
			return err
		}
		for _, u := range seedUnits {
			if _, err := tx.Exec(ctx, `INSERT INTO ad_units (site_id, name, format, width, height)
VALUES ($1,$2,$3,$4,$5)`, site, u.name, u.format, u.w, u.h); err != nil {
				return err
			}
		}

		for i, strategy := range seedStrategies {
			var campaign int64
			err := tx.QueryRow(ctx, `INSERT INTO campaigns
    (organization_id, name, status, bid_strategy, budget_type, budget, spent,
     target_cpm, target_cpc, target_cpa, start_date, end_date)
VALUES ($1,$2,'active',$3,'lifetime',$4,$5,$6,$7,$8,$9,$10) RETURNING id`,
				advertiser, fmt.Sprintf("Campaign %d", i+1), strategy,
				5000.0, float64(r.Intn(4000)), 2.0+float64(r.Intn(20)), 0.5, 5.0,
				time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 1, 0)).Scan(&campaign)
			if err != nil {
				return err
			}

			for j := range 10 {
				if err := seedAd(ctx, tx, r, campaign, i*10+j+1); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func seedAd(ctx context.Context, tx pgx.Tx, r *rand.Rand, campaign int64, n int) error {
	unit := seedUnits[r.Intn(len(seedUnits))]
	creative, err := json.Marshal(domain.Creative{
		Title:      fmt.Sprintf("Creative %d", n),
		ImageURL:   fmt.Sprintf("https://example.com/img/%d.png", n),
		LandingURL: fmt.Sprintf("https://example.com/landing/%d", n),
		Width:      unit.w,
		Height:     unit.h,
	})
	if err != nil {
		return err
	}

	targeting := domain.Targeting{
		Geo:       &domain.GeoLocation{Country: []string{"US", "AM", "DE"}[r.Intn(3)]},
		Device:    &domain.DeviceInfo{Type: []string{"mobile", "desktop"}[r.Intn(2)]},
		Interests: []string{"music", "tech", "sports"}[:1+r.Intn(3)],
		Formats:   []domain.AdFormat{unit.format},
	}
	targetJSON, err := json.Marshal(targeting)
	if err != nil {
		return err
	}

	impressions := int64(1000 + r.Intn(9000))
	clicks := impressions * int64(1+r.Intn(5)) / 100
	conversions := clicks * int64(r.Intn(30)) / 100
	spend := float64(impressions) * 0.002

	_, err = tx.Exec(ctx, `INSERT INTO ads
    (campaign_id, name, status, creative, targeting, impressions, clicks, conversions, spend, created_at)
VALUES ($1,$2,'active',$3,$4,$5,$6,$7,$8,$9)`,
		campaign, fmt.Sprintf("Ad %d", n), creative, targetJSON,
		impressions, clicks, conversions, spend, time.Now().AddDate(0, 0, -r.Intn(45)))
	return err
}
