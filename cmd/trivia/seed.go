package main

import (
	"context"
	"fmt"

	"trivia/internal/db"
	"trivia/internal/seed"
	"trivia/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with categories and, optionally, sample questions",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "questions",
			Usage: "Also load sample questions when the question table is empty",
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "Pretty-print the seeded rows",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c.String("env-prefix"))
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		// Connect to database
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		logrus.Info("Connected to database")

		categoryRepo := store.NewCategoryRepository(pool)
		questionRepo := store.NewQuestionRepository(pool)

		logrus.Info("Seeding categories...")
		categories, err := seed.SeedCategories(ctx, categoryRepo)
		if err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}

		logrus.WithField("count", len(categories)).Info("Categories seeded successfully")
		if c.Bool("dump") {
			pp.Println(categories)
		}

		if !c.Bool("questions") {
			return nil
		}

		logrus.Info("Seeding questions...")
		questions, err := seed.SeedQuestions(ctx, questionRepo)
		if err != nil {
			return fmt.Errorf("failed to seed questions: %w", err)
		}

		if len(questions) == 0 {
			logrus.Info("Questions already present, skipped")
			return nil
		}

		logrus.WithField("count", len(questions)).Info("Questions seeded successfully")
		if c.Bool("dump") {
			pp.Println(questions)
		}

		return nil
	},
}
