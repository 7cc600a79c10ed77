package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"holdhive/internal/adapters/observability"
	"holdhive/internal/domain"
	"holdhive/internal/shared"
	mysqlrepo "holdhive/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	_ = godotenv.Load()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Int("workers", cfg.SeedWorkers).Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	now := time.Now().UTC()

	// Users first: everything else references them.
	for _, u := range seedUsers() {
		if err := repo.InsertUser(ctx, u); err != nil {
			log.Fatal().Str("id", u.ID).Err(err).Msg("insert user failed")
		}
	}
	log.Info().Msg("users seeded")

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, s := range seedSpaces(now) {
		s := s

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(sp domain.Space) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := repo.InsertSpace(ctx, sp); err != nil {
				log.Warn().Str("id", sp.ID).Err(err).Msg("insert space failed")
				return
			}
			log.Info().Str("id", sp.ID).Str("city", sp.City).Msg("space seeded")
		}(s)
	}
	wg.Wait()

	for _, b := range seedBookings(now) {
		b := b

		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(bk domain.Booking) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := repo.InsertBooking(ctx, bk); err != nil {
				log.Warn().Str("id", bk.ID).Err(err).Msg("insert booking failed")
				return
			}
			log.Info().Str("id", bk.ID).Msg("booking seeded")
		}(b)
	}
	wg.Wait()

	// Reviews reference bookings, so they go last.
	for _, r := range seedReviews(now) {
		if err := repo.InsertReview(ctx, r); err != nil {
			log.Warn().Str("id", r.ID).Err(err).Msg("insert review failed")
			continue
		}
	}

	var fid int
	for _, f := range []domain.Favorite{
		{ID: "fav-1", UserID: "usr-aoife", SpaceID: "spc-garage-dublin", CreatedAt: now.AddDate(0, -5, 0)},
		{ID: "fav-2", UserID: "usr-emma", SpaceID: "spc-unit-cork", CreatedAt: now.AddDate(0, -1, 0)},
		{ID: "fav-3", UserID: "usr-james", SpaceID: "spc-garage-dublin", CreatedAt: now},
	} {
		if err := repo.InsertFavorite(ctx, f); err != nil {
			log.Warn().Str("id", f.ID).Err(err).Msg("insert favorite failed")
			continue
		}
		fid++
	}

	log.Info().Int("favorites", fid).Msg("seeding completed")
}
