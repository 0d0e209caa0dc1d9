package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the onboarding tools in flow order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tools := newOnboardingUsecase().Tools()

		if viper.GetBool("json") {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tools)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "STEP\tTOOL\tREQUIRED\tOPTIONAL")
		for _, t := range tools {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Step, t.Name, strings.Join(t.Required, ","), strings.Join(t.Optional, ","))
		}
		return w.Flush()
	},
}
