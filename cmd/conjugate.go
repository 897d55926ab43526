package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
)

var conjugateCmd = &cobra.Command{
	Use:   "conjugate INFINITIVE [TENSE]",
	Short: "Print subjunctive paradigms for a verb",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadRuleTable(cmd)
		if err != nil {
			return err
		}
		engine := conjugation.NewEngine(table)
		infinitive := args[0]

		tenses := conjugation.AllTenses()
		if len(args) == 2 {
			tense, err := parseTense(args[1])
			if err != nil {
				return err
			}
			tenses = []conjugation.Tense{tense}
		}

		out := cmd.OutOrStdout()
		for _, tense := range tenses {
			paradigm, err := engine.Paradigm(infinitive, tense)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s — %s\n", infinitive, tense.DisplayName())
			for _, person := range conjugation.AllPersons() {
				fmt.Fprintf(out, "  %-18s %s\n", person.DisplayName(), paradigm.Form(person))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

// parseTense accepts both the full identifier and a short alias.
func parseTense(s string) (conjugation.Tense, error) {
	switch s {
	case "present", string(conjugation.TensePresent):
		return conjugation.TensePresent, nil
	case "imperfect-ra", string(conjugation.TenseImperfectRa):
		return conjugation.TenseImperfectRa, nil
	case "imperfect-se", string(conjugation.TenseImperfectSe):
		return conjugation.TenseImperfectSe, nil
	case "present-perfect", string(conjugation.TensePresentPerfect):
		return conjugation.TensePresentPerfect, nil
	case "pluperfect", string(conjugation.TensePluperfect):
		return conjugation.TensePluperfect, nil
	}
	return "", fmt.Errorf("unknown tense %q (try present, imperfect-ra, imperfect-se, present-perfect, pluperfect)", s)
}
