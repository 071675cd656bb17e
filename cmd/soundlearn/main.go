package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"

	"github.com/architect/soundlearn/internal/analytics"
	"github.com/architect/soundlearn/internal/catalog"
	"github.com/architect/soundlearn/internal/common/database"
	"github.com/architect/soundlearn/internal/progress"
	"github.com/architect/soundlearn/internal/storage"
	"github.com/architect/soundlearn/pkg/config"
	"github.com/architect/soundlearn/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globals are the persistent flags shared by every subcommand.
type globals struct {
	dataDir string
	store   string
	profile string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "soundlearn",
		Short:         "Inspect and edit a local SoundLearn profile",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.dataDir, "data-dir", "", "profile data directory (default from config)")
	root.PersistentFlags().StringVar(&g.store, "store", "", "storage backend: file|sqlite|memory (default from config)")
	root.PersistentFlags().StringVar(&g.profile, "profile", "default", "profile name")

	root.AddCommand(newProgressCmd(g))
	root.AddCommand(newSettingsCmd(g))
	root.AddCommand(newAnalyticsCmd(g))
	root.AddCommand(newSoundsCmd())
	return root
}

// profile is an opened set of local stores.
type profile struct {
	Progress  *progress.Store
	Analytics *analytics.LocalStore
	closeFn   func() error
}

func (p *profile) Close() error {
	p.Progress.Close()
	if p.closeFn != nil {
		return p.closeFn()
	}
	return nil
}

func openProfile(g *globals) (*profile, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.InitWith(cfg.Server.Env, logger.LogLevel(cfg.Logging.Level), cfg.Logging.Format); err != nil {
		return nil, err
	}
	dir := g.dataDir
	if dir == "" {
		dir = cfg.Client.DataDir
	}
	backend := g.store
	if backend == "" {
		backend = cfg.Client.StoreBackend
	}

	var kv storage.Store
	var closeFn func() error
	switch backend {
	case "file":
		fs, err := storage.NewFileStore(filepath.Join(dir, g.profile))
		if err != nil {
			return nil, err
		}
		kv = fs
	case "sqlite":
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		db, err := database.Open("sqlite", filepath.Join(dir, "profiles.db"), gormlogger.Silent)
		if err != nil {
			return nil, err
		}
		gs, err := storage.NewGormStore(db, g.profile)
		if err != nil {
			return nil, err
		}
		kv = gs
		closeFn = func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
	case "memory":
		kv = storage.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unsupported store %q", backend)
	}

	log := logger.L()
	return &profile{
		Progress:  progress.Open(kv, log),
		Analytics: analytics.OpenLocal(kv, nil, log),
		closeFn:   closeFn,
	}, nil
}

// withProfile opens the profile, runs fn and closes it.
func withProfile(g *globals, fn func(p *profile) error) error {
	p, err := openProfile(g)
	if err != nil {
		return err
	}
	defer p.Close()
	return fn(p)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newProgressCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{Use: "progress", Short: "Stars, wins and completed categories"}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the progress record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProfile(g, func(p *profile) error {
				return printJSON(cmd, p.Progress.Load())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore default progress and settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProfile(g, func(p *profile) error {
				return printJSON(cmd, p.Progress.Reset())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add-stars <n>",
		Short: "Award stars",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("stars must be a whole number: %w", err)
			}
			return withProfile(g, func(p *profile) error {
				rec, err := p.Progress.AddStars(n)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stars: %d\n", rec.StarsEarned)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "explore <category>",
		Short: "Mark a category explored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.ParseCategory(args[0])
			if err != nil {
				return err
			}
			return withProfile(g, func(p *profile) error {
				rec := p.Progress.MarkCategoryExplored(c)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "explored: %d/%d\n", rec.ExploredCount(), len(catalog.Categories()))
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <field> <json-value>",
		Short: "Overwrite one top-level progress field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value any
			if err := json.Unmarshal([]byte(args[1]), &value); err != nil {
				value = args[1]
			}
			return withProfile(g, func(p *profile) error {
				rec, err := p.Progress.UpdateField(args[0], value)
				if err != nil {
					return err
				}
				return printJSON(cmd, rec)
			})
		},
	})
	return cmd
}

func newSettingsCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{Use: "settings", Short: "Accessibility settings"}

	var volume float64
	var textSize string
	var highContrast, reducedMotion bool
	set := &cobra.Command{
		Use:   "set",
		Short: "Change settings; only the given flags are applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var patch progress.SettingsPatch
			flags := cmd.Flags()
			if flags.Changed("volume") {
				patch.Volume = &volume
			}
			if flags.Changed("text-size") {
				ts := progress.TextSize(textSize)
				patch.TextSize = &ts
			}
			if flags.Changed("high-contrast") {
				patch.HighContrast = &highContrast
			}
			if flags.Changed("reduced-motion") {
				patch.ReducedMotion = &reducedMotion
			}
			return withProfile(g, func(p *profile) error {
				rec, err := p.Progress.UpdateSettings(patch)
				if err != nil {
					return err
				}
				return printJSON(cmd, rec.Settings)
			})
		},
	}
	set.Flags().Float64Var(&volume, "volume", 0.8, "volume from 0 to 1")
	set.Flags().StringVar(&textSize, "text-size", "medium", "text size: small|medium|large")
	set.Flags().BoolVar(&highContrast, "high-contrast", false, "high contrast colors")
	set.Flags().BoolVar(&reducedMotion, "reduced-motion", false, "reduce animations")
	cmd.AddCommand(set)
	return cmd
}

func newAnalyticsCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{Use: "analytics", Short: "Attempts, sessions and derived metrics"}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the analytics record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProfile(g, func(p *profile) error {
				return printJSON(cmd, p.Analytics.Get())
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Success rate, attempts, minutes played and favorite mode",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProfile(g, func(p *profile) error {
				s := p.Analytics.Summary()
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "success rate: %d%%\nattempts: %d\ntime spent: %.1f min\nfavorite mode: %s\n",
					s.SuccessRate, s.TotalAttempts, s.TimeSpent, s.FavoriteMode)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "breakdown",
		Short: "Per-category accuracy and per-mode share",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProfile(g, func(p *profile) error {
				b := analytics.NewBreakdown(p.Analytics.Get())
				out := cmd.OutOrStdout()
				for _, c := range b.Categories {
					_, _ = fmt.Fprintf(out, "%s\t%d/%d\t%d%%\n", c.Category, c.Correct, c.Attempts, c.Percentage)
				}
				for _, m := range b.Modes {
					_, _ = fmt.Fprintf(out, "%s\t%d sessions\t%d%%\n", m.Mode, m.Sessions, m.Percentage)
				}
				_, _ = fmt.Fprintf(out, "average session: %d min\n", b.AverageSessionMinutes)
				if b.BestCategory != nil {
					_, _ = fmt.Fprintf(out, "best category: %s\n", b.BestCategory.Category)
				}
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Delete the analytics record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProfile(g, func(p *profile) error {
				p.Analytics.Reset()
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "analytics reset")
				return nil
			})
		},
	})

	var correct bool
	var category, mode string
	attempt := &cobra.Command{
		Use:   "track-attempt",
		Short: "Record one answer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withProfile(g, func(p *profile) error {
				rec := p.Analytics.TrackAttempt(correct, category, mode)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "attempts: %d correct: %d\n", rec.TotalAttempts, rec.CorrectAnswers)
				return nil
			})
		},
	}
	attempt.Flags().BoolVar(&correct, "correct", false, "answer was correct")
	attempt.Flags().StringVar(&category, "category", "", "sound category")
	attempt.Flags().StringVar(&mode, "mode", "", "game mode")

	var sessionMode string
	var minutes float64
	session := &cobra.Command{
		Use:   "track-session",
		Short: "Record one play session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sessionMode == "" {
				return fmt.Errorf("--mode is required")
			}
			return withProfile(g, func(p *profile) error {
				rec := p.Analytics.TrackSession(sessionMode, minutes)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sessions: %d time spent: %.1f min\n", len(rec.SessionHistory), rec.TimeSpent)
				return nil
			})
		},
	}
	session.Flags().StringVar(&sessionMode, "mode", "", "game mode")
	session.Flags().Float64Var(&minutes, "minutes", 0, "session length in minutes")

	cmd.AddCommand(attempt, session)
	return cmd
}

func newSoundsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "sounds", Short: "Built-in sound catalog"}

	var category string
	list := &cobra.Command{
		Use:   "list",
		Short: "List sounds, optionally for one category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := catalog.Default.All()
			if category != "" {
				c, err := catalog.ParseCategory(category)
				if err != nil {
					return err
				}
				items = catalog.Default.ByCategory(c)
			}
			for _, it := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s %s\t%s\t%s\n", it.ID, it.Emoji, it.Name, it.Category, it.Sound)
			}
			return nil
		},
	}
	list.Flags().StringVar(&category, "category", "", "category filter")
	cmd.AddCommand(list)
	return cmd
}
