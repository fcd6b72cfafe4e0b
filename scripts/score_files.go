package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"alfredoptarigan/ats-scorer/internal/config"
	"alfredoptarigan/ats-scorer/internal/models"
	"alfredoptarigan/ats-scorer/internal/services"
)

//nolint:gochecknoglobals // Cobra boilerplate
var outputPath string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "score_files <resume> <job-description>",
	Short: "Score a resume against a job description",
	Long: `Runs the ATS analysis on two files and writes the model's answer to ats_analysis.json.

Both files may be .pdf, .docx or .txt. The provider and its credentials are read
from the environment (or .env), exactly like the web server.

Example:
  go run scripts/score_files.go ./resume.pdf ./job_description.txt -o ./ats_analysis.json`,
	Args: cobra.ExactArgs(2),
	RunE: runScore,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "ats_analysis.json", "Where to write the analysis")
}

func runScore(cmd *cobra.Command, args []string) error {
	log.Println("🚀 Starting ATS analysis...")

	cfg := config.Load()

	provider, err := services.NewChatProvider(services.ProviderOptions{
		Name:    cfg.Completion.Provider,
		APIKey:  cfg.APIKey(),
		Model:   cfg.Model(),
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize completion provider: %w", err)
	}

	extractor := services.NewTextExtractor(cfg.Storage.MaxFileSize)
	analyzer := services.NewAnalyzerService(
		services.NewCompletionService(provider, services.NewLogNotifier()),
		cfg.Completion.Timeout,
	)

	texts := make([]string, len(args))
	for i, path := range args {
		log.Printf("📄 Extracting text from %s", path)

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		texts[i], err = extractor.ExtractText(path, data)
		if err != nil {
			return fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		log.Printf("   ✅ Extracted %d characters", len(texts[i]))
	}

	analysis, err := analyzer.Analyze(context.Background(), models.AnalysisRequest{
		ResumeText:         texts[0],
		JobDescriptionText: texts[1],
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(analysis.Raw), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	result := analysis.Result
	log.Println(strings.Repeat("=", 60))
	log.Printf("📊 ATS Score: %d/100", result.OverallScore)
	log.Printf("   ✅ Matching skills: %s", joinOrNone(result.MatchingSkills))
	log.Printf("   ❌ Missing skills: %s", joinOrNone(result.MissingSkills))
	for _, warning := range analysis.Warnings {
		log.Printf("   ⚠️  %s", warning)
	}
	log.Println(strings.Repeat("=", 60))
	log.Printf("✅ Analysis written to %s", outputPath)

	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
