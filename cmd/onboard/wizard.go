package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fractional-quest-backend/internal/domain"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const intro = `Welcome to Fractional Quest! I help fractional executives find CTO, CFO, CMO
and other C-level roles. Let's build your profile in a few quick steps.`

var errExit = errors.New("exit requested")

// asker reads one free-text answer from the user
type asker interface {
	Ask(label string) (string, error)
}

type promptAsker struct{}

func (promptAsker) Ask(label string) (string, error) {
	p := promptui.Prompt{Label: label}
	answer, err := p.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", errExit
	}
	return answer, err
}

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Walk through the onboarding steps interactively",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")

		w := &wizard{
			uc:   newOnboardingUsecase(),
			ask:  promptAsker{},
			out:  cmd.OutOrStdout(),
			json: viper.GetBool("json"),
		}

		err := w.Run(cmd.Context(), &domain.StartSessionRequest{Name: name, Email: email})
		if errors.Is(err, errExit) {
			fmt.Fprintln(cmd.OutOrStdout(), "Onboarding paused. See you soon!")
			return nil
		}
		return err
	},
}

func init() {
	wizardCmd.Flags().String("name", "", "your name")
	wizardCmd.Flags().String("email", "", "your email")
}

// wizard is a terminal driver for the onboarding tools. It asks the question
// for the session's current step and follows next_step from each result.
type wizard struct {
	uc   domain.OnboardingUsecase
	ask  asker
	out  io.Writer
	json bool
}

func (w *wizard) Run(ctx context.Context, req *domain.StartSessionRequest) error {
	if ctx == nil {
		ctx = context.Background()
	}

	session, err := w.uc.StartSession(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(w.out, intro)

	for {
		status, err := w.uc.GetOnboardingStatus(ctx, session.ID)
		if err != nil {
			return err
		}

		tool, input, err := w.askStep(status.CurrentStep)
		if err != nil {
			return err
		}

		result, err := w.uc.CallSessionTool(ctx, session.ID, tool, input)
		if err != nil {
			return err
		}

		if !result.Success {
			fmt.Fprintln(w.out, result.Error)
			continue
		}

		if result.OnboardingCompleted {
			return w.printSummary(result)
		}
		fmt.Fprintln(w.out, result.Message)
	}
}

// askStep collects the answers for step and names the tool to call
func (w *wizard) askStep(step domain.Step) (domain.ToolName, domain.StepInput, error) {
	var in domain.StepInput
	var err error

	switch step {
	case domain.StepIntro, domain.StepRolePreference:
		in.Role, err = w.ask.Ask("What C-level role are you looking for (cto, cfo, cmo, coo, cro, cpo, chro, ciso, other)?")
		return domain.ToolConfirmRolePreference, in, err

	case domain.StepTrinity:
		in.EngagementType, err = w.ask.Ask("Fractional, interim, advisory, or all?")
		return domain.ToolConfirmTrinity, in, err

	case domain.StepExperience:
		years, err := w.askYears()
		if err != nil {
			return "", in, err
		}
		in.Years = &years

		industries, err := w.ask.Ask("Which industries have you worked in (comma separated)?")
		if err != nil {
			return "", in, err
		}
		in.Industries = splitList(industries)
		return domain.ToolConfirmExperience, in, nil

	case domain.StepLocation:
		if in.Location, err = w.ask.Ask("Where are you based?"); err != nil {
			return "", in, err
		}
		in.RemotePreference, err = w.ask.Ask("Remote, hybrid, onsite, or flexible?")
		return domain.ToolConfirmLocation, in, err

	case domain.StepSearchPrefs:
		comp, err := w.ask.Ask("Target compensation (leave empty if open)?")
		if err != nil {
			return "", in, err
		}
		if comp = strings.TrimSpace(comp); comp != "" {
			in.TargetCompensation = &comp
		}
		in.Availability, err = w.ask.Ask("When can you start (immediately, 2_weeks, 1_month, ...)?")
		return domain.ToolConfirmSearchPrefs, in, err

	default:
		return domain.ToolCompleteOnboarding, in, nil
	}
}

// askYears repeats the question until the answer parses as an integer
func (w *wizard) askYears() (int, error) {
	for {
		answer, err := w.ask.Ask("How many years of executive experience do you have?")
		if err != nil {
			return 0, err
		}
		years, err := strconv.Atoi(strings.TrimSpace(answer))
		if err == nil {
			return years, nil
		}
		fmt.Fprintln(w.out, "Please answer with a whole number of years.")
	}
}

func (w *wizard) printSummary(result *domain.StepResult) error {
	if w.json {
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.ProfileSummary)
	}

	s := result.ProfileSummary
	fmt.Fprintln(w.out, result.Message)
	fmt.Fprintf(w.out, "  Role:         %s\n", strings.ToUpper(string(s.Role)))
	fmt.Fprintf(w.out, "  Engagement:   %s\n", s.EngagementType)
	if s.Experience.Years != nil {
		fmt.Fprintf(w.out, "  Experience:   %d years %s\n", *s.Experience.Years, strings.Join(s.Experience.Industries, ", "))
	}
	fmt.Fprintf(w.out, "  Location:     %s (%s)\n", s.Location.Base, s.Location.RemotePreference)
	compensation := "open"
	if s.SearchPreferences.Compensation != nil {
		compensation = *s.SearchPreferences.Compensation
	}
	fmt.Fprintf(w.out, "  Compensation: %s\n", compensation)
	fmt.Fprintf(w.out, "  Availability: %s\n", strings.ReplaceAll(s.SearchPreferences.Availability, "_", " "))
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
