package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"meal-plan-seeder/internal/app"
	"meal-plan-seeder/internal/config"
	"meal-plan-seeder/internal/logger"
	"meal-plan-seeder/internal/meal"
	"meal-plan-seeder/internal/storage"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type generateOptions struct {
	preset  string
	surgery string
	out     string
}

func main() {
	ctx := context.Background()

	if err := loadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
		var opts generateOptions
		generateCmd.StringVar(&opts.preset, "preset", config.DefaultPreset, "Preset to generate (see 'presets')")
		generateCmd.StringVar(&opts.surgery, "surgery", "", "Use the phase brackets of a surgery protocol")
		generateCmd.StringVar(&opts.out, "out", "", "Output file; a bare name is written to MEAL_SEEDER_OUTPUT_DIR")
		generateCmd.Parse(os.Args[2:])

		if err := runGenerate(ctx, os.Stdout, opts); err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
	case "presets":
		printPresets(os.Stdout)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// loadDotEnv loads filename into the environment. A missing file is not an error.
func loadDotEnv(filename string) error {
	err := godotenv.Load(filename)
	if errors.Is(err, os.ErrNotExist) {
		log.Println("No .env file found, reading environment variables")
		return nil
	}
	return err
}

func runGenerate(ctx context.Context, stdout io.Writer, opts generateOptions) error {
	cfg, err := config.Load(opts.preset)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.surgery != "" {
		if err := cfg.ApplySurgeryType(opts.surgery); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
	}
	if opts.out != "" {
		cfg.OutputFile = filepath.Base(opts.out)
		if dir := filepath.Dir(opts.out); filepath.IsAbs(opts.out) || dir != "." {
			cfg.OutputDir = dir
		}
	}

	zl := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer zl.Sync()

	store, err := storage.NewSQLStore(cfg.OutputDir)
	if err != nil {
		return err
	}

	res, err := app.NewApp(cfg, zl, store).Run(ctx)
	if err != nil {
		zl.Error("generation failed", zap.Error(err))
		return err
	}

	fmt.Fprintf(stdout, "SQL file '%s' has been generated.\n", res.File)
	return nil
}

func printPresets(stdout io.Writer) {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRANGE\tSURGERY\tBRACKETS\tSTYLE\tFILE")
	for _, p := range config.Presets() {
		fmt.Fprintf(w, "%s\t%s..%s\t%s\t%s\t%s\t%s\n",
			p.Name,
			p.StartDate.Format("2006-01-02"),
			p.EndDate.Format("2006-01-02"),
			p.SurgeryDate.Format("2006-01-02"),
			p.Brackets,
			p.Style,
			p.OutputFile,
		)
	}
	w.Flush()

	types := make([]string, 0, 3)
	for _, t := range meal.StagedSurgeryTypes() {
		types = append(types, string(t))
	}
	fmt.Fprintf(stdout, "\nSurgery protocols (-surgery): %s\n", strings.Join(types, ", "))
}

func printUsage() {
	fmt.Println("Usage: meal-plan-seeder <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  generate [-preset recovery|sample] [-surgery TYPE] [-out FILE]   Write a meal_plans SQL fixture")
	fmt.Println("  presets                                                          List presets and surgery protocols")
}
