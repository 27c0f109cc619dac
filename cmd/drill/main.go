package main

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"wordrep/internal/config"
	"wordrep/internal/content"
	"wordrep/internal/domain"
	"wordrep/internal/repository/postgres"
	"wordrep/internal/service"
	"wordrep/internal/srs"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting wordrep drill")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	wordRepo := postgres.NewWordRepo(db)
	progressRepo := postgres.NewProgressRepo(db)

	// Initialize services
	reviewService := service.NewReviewService(wordRepo, srs.DefaultPolicy(), logger)
	sessionService := service.NewSessionService(logger)
	progressService := service.NewProgressService(progressRepo, wordRepo, logger)

	// Seed vocabulary content
	loader := content.NewLoader(wordRepo, logger)
	if _, err := loader.Seed(cfg.DeckPath, time.Now()); err != nil {
		logger.Warn("Deck seeding skipped", zap.Error(err))
	}

	if err := runSession(cfg, reviewService, sessionService, progressService, logger); err != nil {
		logger.Fatal("Session failed", zap.Error(err))
	}

	logger.Info("Drill finished")
}

// runSession drives one interactive review session on stdin and folds
// the result into the day's progress.
func runSession(cfg *config.Config, reviews *service.ReviewService, sessions *service.SessionService, progress *service.ProgressService, logger *zap.Logger) error {
	now := time.Now()

	due, err := reviews.DueWords(now, cfg.SessionLimit)
	if err != nil {
		return fmt.Errorf("load due words: %w", err)
	}
	if len(due) < cfg.SessionLimit {
		// Fill remaining slots with fresh vocabulary.
		fresh, err := reviews.NewWords(cfg.SessionLimit - len(due))
		if err != nil {
			return fmt.Errorf("load new words: %w", err)
		}
		due = append(due, fresh...)
	}
	if len(due) == 0 {
		fmt.Println("Nothing due for review.")
		printForecast(reviews, now)
		return nil
	}

	fmt.Printf("%d words due. Answer with y (known), e (easy), n (unknown), q (quit).\n\n", len(due))

	sessions.Start(now)

	// An interrupt must still finalize and fold whatever was answered,
	// so the blocking stdin reads run in a goroutine and the loop
	// selects between the next line and a shutdown signal.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	lines := make(chan string)
	go func() {
		reader := bufio.NewReader(os.Stdin)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				close(lines)
				return
			}
			lines <- line
		}
	}()

answers:
	for _, word := range due {
		fmt.Printf("%s = ?  ", word.Term)

		var line string
		var open bool
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received, ending session", zap.String("signal", sig.String()))
			fmt.Println()
			break answers
		case line, open = <-lines:
			if !open {
				break answers
			}
		}

		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "q" {
			break
		}

		var outcome domain.Outcome
		switch answer {
		case "y":
			outcome = domain.OutcomeKnown
		case "e":
			outcome = domain.OutcomeEasy
		default:
			outcome = domain.OutcomeUnknown
		}

		updated, result, err := reviews.SubmitAnswer(word.ID, outcome, time.Now())
		if err != nil {
			logger.Error("Failed to submit answer", zap.String("word_id", word.ID), zap.Error(err))
			continue
		}

		if err := sessions.RecordAnswer(outcome); err != nil {
			return err
		}
		if result.LeftNew {
			if err := sessions.RecordLearned(); err != nil {
				return err
			}
		}

		fmt.Printf("  -> %s (%s, next in %dd)\n", updated.Translation, updated.Mastery, updated.IntervalDays)
	}

	end := time.Now()
	summary, err := sessions.Finalize(end)
	if err != nil {
		return err
	}
	if summary.TotalReviewed == 0 {
		fmt.Println("No answers recorded, nothing to fold into today's progress.")
		return nil
	}

	day, stats, err := progress.FoldSessionIntoDay(summary, end)
	if err != nil {
		return fmt.Errorf("fold session: %w", err)
	}

	fmt.Printf("\nReviewed %d words, accuracy %.0f%%, %.1f words/min.\n",
		summary.TotalReviewed, summary.Accuracy*100, summary.WordsPerMinute)
	fmt.Printf("Today: %d reviewed, %d learned. Streak: %d days (best %d), freezes: %d.\n",
		day.WordsReviewed, day.WordsLearned, stats.CurrentStreak, stats.LongestStreak, stats.StreakFreezes)
	return nil
}

func printForecast(reviews *service.ReviewService, now time.Time) {
	forecast, err := reviews.Forecast(now, 7)
	if err != nil {
		return
	}
	for _, day := range forecast {
		if day.Due > 0 {
			fmt.Printf("  %s: %d due\n", day.Day.Format("Mon Jan 2"), day.Due)
		}
	}
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
