package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	analyticsModels "github.com/architect/soundlearn/internal/analytics/models"
	analyticsServices "github.com/architect/soundlearn/internal/analytics/services"
	cardModels "github.com/architect/soundlearn/internal/cards/models"
	cardServices "github.com/architect/soundlearn/internal/cards/services"
	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/common/database"
	userModels "github.com/architect/soundlearn/internal/users/models"
	userServices "github.com/architect/soundlearn/internal/users/services"
	"github.com/architect/soundlearn/pkg/config"
	"github.com/architect/soundlearn/pkg/logger"
)

type options struct {
	DBType   string
	DSN      string
	NumUsers int
	Seed     int64
}

var opts options

func init() {
	flag.StringVar(&opts.DBType, "db-type", "", "Database type: sqlite or postgres (default from config)")
	flag.StringVar(&opts.DSN, "dsn", "", "Database DSN (default from config)")
	flag.IntVar(&opts.NumUsers, "users", 10, "Number of users to generate")
	flag.Int64Var(&opts.Seed, "seed", time.Now().UnixNano(), "Random seed")
}

var childNames = []string{"Ava", "Leo", "Mia", "Noah", "Zara", "Omar", "Ivy", "Kai", "Lena", "Ravi"}

var cardIdeas = []struct {
	name, emoji, description, color, sound string
}{
	{"Doorbell", "🔔", "Someone is at the door", "#f5a623", "doorbell"},
	{"Grandpa's Laugh", "😂", "A big happy laugh", "#7ed321", "grandpa-laugh"},
	{"Kettle", "🫖", "Water is boiling", "#4a90e2", "kettle"},
	{"School Bell", "🏫", "Time for class", "#d0021b", "school-bell"},
	{"Puppy Bark", "🐕", "Our puppy says hello", "#9013fe", "puppy-bark"},
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

// run returns instead of exiting so the deferred close and sync always run.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.InitWith(cfg.Server.Env, logger.LogLevel(cfg.Logging.Level), cfg.Logging.Format); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Sync()

	if opts.DBType == "" {
		opts.DBType = cfg.Database.Type
	}
	if opts.DSN == "" {
		opts.DSN = cfg.Database.DSN
	}

	db, err := database.Open(opts.DBType, opts.DSN, gormlogger.Warn)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	database.DB = db
	defer database.Close()

	if err := database.Migrate(db, &userModels.User{}, &cardModels.CustomCard{}, &analyticsModels.Analytics{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	logger.Info("Starting data seeding", zap.Int("users", opts.NumUsers), zap.Int64("seed", opts.Seed))

	userIDs, err := seedUsers(rng, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	cards, err := seedCards(rng, userIDs)
	if err != nil {
		return fmt.Errorf("seed cards: %w", err)
	}
	events, err := seedAnalytics(rng, userIDs)
	if err != nil {
		return fmt.Errorf("seed analytics: %w", err)
	}

	logger.Info("Seeding complete",
		zap.Int("users", len(userIDs)),
		zap.Int("cards", cards),
		zap.Int("analytics_events", events),
	)
	return nil
}

func seedUsers(rng *rand.Rand, n int) ([]string, error) {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name := childNames[i%len(childNames)]
		age := 3 + rng.Intn(8)
		user, err := userServices.CreateUser(userModels.CreateUserRequest{
			ChildName:   name,
			Age:         &age,
			ParentEmail: fmt.Sprintf("parent%d@example.com", i+1),
		})
		if err != nil {
			return ids, err
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

// seedCards gives every other user a card; half of them are public.
func seedCards(rng *rand.Rand, userIDs []string) (int, error) {
	count := 0
	for i, id := range userIDs {
		if i%2 == 1 {
			continue
		}
		idea := cardIdeas[rng.Intn(len(cardIdeas))]
		card, err := cardServices.CreateCard(cardModels.CreateCardRequest{
			UserID:      id,
			Name:        idea.name,
			Emoji:       idea.emoji,
			Description: idea.description,
			Color:       idea.color,
			SoundID:     idea.sound,
			IsPublic:    rng.Intn(2) == 0,
		})
		if err != nil {
			return count, err
		}
		count++
		for u := rng.Intn(4); u > 0; u-- {
			if _, err := cardServices.UseCard(card.ID); err != nil {
				return count, err
			}
		}
	}
	return count, nil
}

func seedAnalytics(rng *rand.Rand, userIDs []string) (int, error) {
	modes := catalog.GameModes()
	categories := catalog.Categories()
	events := 0
	for _, id := range userIDs {
		for a := 5 + rng.Intn(20); a > 0; a-- {
			correct := rng.Float64() < 0.7
			_, err := analyticsServices.TrackAttempt(analyticsModels.TrackAttemptRequest{
				UserID:    id,
				IsCorrect: &correct,
				Category:  string(categories[rng.Intn(len(categories))]),
				GameMode:  "quiz",
			})
			if err != nil {
				return events, err
			}
			events++
		}
		for s := 1 + rng.Intn(5); s > 0; s-- {
			minutes := 1 + rng.Float64()*9
			_, err := analyticsServices.TrackSession(analyticsModels.TrackSessionRequest{
				UserID:          id,
				GameMode:        modes[rng.Intn(len(modes))].WireName(),
				DurationMinutes: &minutes,
			})
			if err != nil {
				return events, err
			}
			events++
		}
	}
	return events, nil
}
