package main

import (
	"log"
	"strings"

	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/internal/repository/memory"
	"fractional-quest-backend/internal/usecase"
	"fractional-quest-backend/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const app = "onboard"

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "onboard drives the Fractional Quest onboarding flow from a terminal",
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := "info"
		if viper.GetBool("debug") {
			level = "debug"
		}
		logger.InitWithWriter(cmd.ErrOrStderr(), level)
	},
}

func init() {
	viper.SetEnvPrefix("ONBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "print results as JSON")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json")); err != nil {
		log.Fatalf("binding json flag: %v", err)
	}

	rootCmd.AddCommand(stepsCmd, wizardCmd, mcpCmd)
}

// newOnboardingUsecase wires an in-memory onboarding usecase for a single process
func newOnboardingUsecase() domain.OnboardingUsecase {
	return usecase.NewOnboardingUsecase(memory.NewSessionRepository(), usecase.NewValidator())
}
