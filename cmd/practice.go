package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjpl/subjunctive-practice-sub006/internal/adaptive"
	"github.com/bjpl/subjunctive-practice-sub006/internal/analyzer"
	"github.com/bjpl/subjunctive-practice-sub006/internal/conjugation"
	"github.com/bjpl/subjunctive-practice-sub006/internal/exercise"
	"github.com/bjpl/subjunctive-practice-sub006/internal/session"
	"github.com/bjpl/subjunctive-practice-sub006/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an interactive practice session",
	Long: `Start a line-based practice session. Type your conjugation and press
enter; ":hint" shows the start of the answer, ":skip" moves on, ":quit"
ends the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		userID, _ := cmd.Flags().GetString("user")

		table, err := loadRuleTable(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		engine := conjugation.NewEngine(table)
		sess := session.New(
			engine,
			analyzer.New(engine),
			adaptive.NewController(adaptive.DefaultConfig()),
			st.Repository(),
			exercise.NewProvider(table, time.Now().UnixNano()),
			session.WithEventRepo(st.EventRepo()),
		)
		if err := sess.Start(ctx, userID); err != nil {
			return err
		}

		in := bufio.NewScanner(os.Stdin)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Practice session started. :hint, :skip, :quit")

		for {
			p, err := sess.PresentNext(ctx)
			if err != nil {
				var noEx *session.NoExerciseAvailableError
				if errors.As(err, &noEx) {
					fmt.Fprintln(out, "No more exercises available.")
					break
				}
				return err
			}
			marker := ""
			if p.Review {
				marker = " [review]"
			}
			fmt.Fprintf(out, "\n%s%s\n  %s, %s\n", p.SentenceTemplate, marker, p.Infinitive, p.Tense.DisplayName())

			if done, err := answerLoop(cmd, sess, in); err != nil {
				return err
			} else if done {
				break
			}
		}

		sum, err := sess.End(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nSession over: %d/%d correct (%.0f%%) in %s.\n",
			sum.Correct, sum.Answered, sum.Accuracy()*100, sum.Duration.Round(time.Second))
		return nil
	},
}

// answerLoop reads answers for the current exercise until it is resolved.
// Returns true when the learner quits.
func answerLoop(cmd *cobra.Command, sess *session.Session, in *bufio.Scanner) (bool, error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	for {
		fmt.Fprint(out, "> ")
		if !in.Scan() {
			return true, in.Err()
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case ":quit":
			return true, nil
		case ":skip":
			return false, nil
		case ":hint":
			hint, err := sess.Hint()
			if err != nil {
				return false, err
			}
			fmt.Fprintln(out, "  "+hint)
			continue
		case "":
			continue
		}

		res, err := sess.SubmitAnswer(ctx, line)
		if err != nil {
			return false, err
		}
		printResult(out, res)
		if res.IsCorrect {
			return false, nil
		}
	}
}

func printResult(out io.Writer, res session.SubmissionResult) {
	switch {
	case res.IsCorrect && res.MatchType == conjugation.MatchExact:
		fmt.Fprintf(out, "  Correct. Next review in %d day(s).\n", res.NextDueInDays)
	case res.IsCorrect:
		fmt.Fprintf(out, "  Almost: watch the accent. Correct form: %s\n", res.CorrectAnswer)
	default:
		fmt.Fprintln(out, "  Incorrect.")
		if res.Hint != "" {
			fmt.Fprintln(out, "  "+res.Hint)
		}
	}
}
