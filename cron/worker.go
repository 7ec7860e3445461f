package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sokoway/config"
	routeRepo "sokoway/database/repository/route"
	"sokoway/models"
	"sokoway/services/logistics"
	"sokoway/services/tasks"
	"sokoway/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitMarketRateWorker runs the async worker that refreshes per-corridor
// market reference prices, and schedules the periodic refresh.
func InitMarketRateWorker(routes routeRepo.RouteRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMarketRateDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeMarketRateRefresh, handleMarketRateTask(routes, utils.GetMarketRateClient()))

	go func() {
		log.Println("[MarketRateWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[MarketRateWorker] failed to start worker: %v", err)
		}
	}()

	go scheduleRefresh(redisOpts)
}

// scheduleRefresh enqueues a refresh task immediately and then on the
// configured cadence.
func scheduleRefresh(redisOpts asynq.RedisClientOpt) {
	client := asynq.NewClient(redisOpts)
	defer client.Close()

	interval := time.Duration(config.AppConfig.MarketRefreshMins) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	enqueue := func() {
		task, opts, err := tasks.NewMarketRateTask(models.MarketRatePayload{}, time.Time{})
		if err != nil {
			log.Printf("[MarketRateWorker] failed to build task: %v", err)
			return
		}
		if _, err := client.Enqueue(task, opts...); err != nil {
			log.Printf("[MarketRateWorker] failed to enqueue refresh: %v", err)
		}
	}

	enqueue()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		enqueue()
	}
}

func handleMarketRateTask(routes routeRepo.RouteRepository, cache *redis.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.MarketRatePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MarketRateWorker] invalid payload: %v", err)
			return err
		}

		var (
			all []models.Route
			err error
		)
		if p.PartnerID != "" {
			all, err = routes.GetByPartnerID(ctx, p.PartnerID)
		} else {
			all, err = routes.ListAll(ctx)
		}
		if err != nil {
			return fmt.Errorf("market rate refresh: %w", err)
		}

		rates := aggregateCorridors(all)
		for key, rate := range rates {
			value, err := json.Marshal(rate)
			if err != nil {
				return fmt.Errorf("market rate encode: %w", err)
			}
			if err := cache.Set(ctx, utils.MarketRatePrefix+key, value, 2*time.Hour).Err(); err != nil {
				return fmt.Errorf("market rate cache write: %w", err)
			}
		}

		log.Printf("[MarketRateWorker] refreshed %d corridor(s)", len(rates))
		return nil
	}
}

// aggregateCorridors averages route prices per directionless corridor.
// Corridors mixing currencies are skipped: amounts are opaque labels with no
// conversion defined, so averaging across them would be meaningless.
func aggregateCorridors(all []models.Route) map[string]models.CorridorRate {
	type bucket struct {
		from     string
		to       string
		sum      float64
		count    int
		currency string
		mixed    bool
	}
	buckets := make(map[string]*bucket)

	for _, r := range all {
		if r.From == "" || r.To == "" || r.Price <= 0 {
			continue
		}
		key := logistics.CorridorKey(r.From, r.To)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{from: r.From, to: r.To, currency: r.Currency}
			buckets[key] = b
		}
		if r.Currency != b.currency {
			b.mixed = true
			continue
		}
		b.sum += r.Price
		b.count++
	}

	rates := make(map[string]models.CorridorRate, len(buckets))
	for key, b := range buckets {
		if b.mixed || b.count == 0 {
			continue
		}
		rates[key] = models.CorridorRate{
			From:           b.from,
			To:             b.to,
			Currency:       b.currency,
			SuggestedPrice: b.sum / float64(b.count),
			SampleSize:     b.count,
		}
	}
	return rates
}
