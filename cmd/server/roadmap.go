package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HammerMeetNail/syncin/internal/models"
	"github.com/HammerMeetNail/syncin/internal/services"
)

func newRoadmapCmd() *cobra.Command {
	var (
		career    string
		age       int
		passions  []string
		education string
		lifestyle string
	)

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Print a career roadmap as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := models.CareerQuery{Career: career, PassionsOrSkills: passions}
			flags := cmd.Flags()
			if flags.Changed("age") {
				query.Age = &age
			}
			if flags.Changed("education") {
				query.EducationLevel = &education
			}
			if flags.Changed("lifestyle") {
				query.LifestyleOrSalary = &lifestyle
			}

			return printJSON(cmd.OutOrStdout(), services.NewRoadmapService().Generate(query))
		},
	}

	cmd.Flags().StringVarP(&career, "career", "c", "", "Target career (required)")
	cmd.Flags().IntVar(&age, "age", 0, "Age of the learner")
	cmd.Flags().StringSliceVar(&passions, "passions", nil, "Passions or skills, comma separated")
	cmd.Flags().StringVar(&education, "education", "", "Education level")
	cmd.Flags().StringVar(&lifestyle, "lifestyle", "", "Lifestyle or salary goal")

	if err := cmd.MarkFlagRequired("career"); err != nil {
		panic(fmt.Sprintf("failed to mark career flag as required: %v", err))
	}
	return cmd
}
