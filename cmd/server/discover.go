package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/HammerMeetNail/syncin/internal/models"
	"github.com/HammerMeetNail/syncin/internal/schemas"
	"github.com/HammerMeetNail/syncin/internal/services"
)

func newDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Work with the discovery quizzes",
	}
	cmd.AddCommand(newDiscoverTestsCmd(), newDiscoverEvaluateCmd())
	return cmd
}

func newDiscoverTestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tests",
		Short: "Print the quiz catalog as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), services.NewCatalogService().ListTests())
		},
	}
}

// evaluationOutput adds the full ranking to an evaluation when --scores is
// given.
type evaluationOutput struct {
	*models.EvaluationResult
	Scores []models.ScoreEntry `json:"scores,omitempty"`
}

func newDiscoverEvaluateCmd() *cobra.Command {
	var (
		answers    string
		file       string
		showScores bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score quiz answers and print the evaluation as JSON",
		Long:  `Reads a JSON object of the form {"answers": {...}} from --answers, or from --file ("-" reads stdin).`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readAnswers(cmd.InOrStdin(), answers, file)
			if err != nil {
				return err
			}
			if err := schemas.Validate(schemas.DiscoverAnswers, raw); err != nil {
				return fmt.Errorf("invalid answers: %w", err)
			}

			var req models.DiscoverAnswers
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("decoding answers: %w", err)
			}

			out := evaluationOutput{
				EvaluationResult: services.NewEvaluatorService().Evaluate(req.Answers),
			}
			if showScores {
				out.Scores = services.Rank(services.ExtractSignals(req.Answers))
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&answers, "answers", "a", "", "Answers document as inline JSON")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to an answers document, or - for stdin")
	cmd.Flags().BoolVar(&showScores, "scores", false, "Include the full score ranking")
	cmd.MarkFlagsMutuallyExclusive("answers", "file")
	cmd.MarkFlagsOneRequired("answers", "file")
	return cmd
}

func readAnswers(stdin io.Reader, inline, path string) ([]byte, error) {
	switch {
	case inline != "":
		return []byte(inline), nil
	case path == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return bytes.TrimSpace(data), nil
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading answers file: %w", err)
		}
		return bytes.TrimSpace(data), nil
	default:
		return nil, errors.New("one of --answers or --file is required")
	}
}
