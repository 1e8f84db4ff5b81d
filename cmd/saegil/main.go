// Command saegil runs the debt analysis and restructuring engine over a
// YAML request file. The engine itself is pure computation; this binary is
// the only surface that touches files and terminals.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dohyun-im/saegil/internal/analysis"
	"github.com/dohyun-im/saegil/internal/config"
	"github.com/dohyun-im/saegil/internal/domain"
	"github.com/dohyun-im/saegil/internal/output"
	"github.com/dohyun-im/saegil/internal/policy"
	"github.com/dohyun-im/saegil/internal/simulation"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	formatFlag string
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "saegil",
	Short: "Debt analysis and restructuring-plan matching engine",
	Long: "saegil diagnoses a debt portfolio (DTI/DSR, credit grade, risk tier),\n" +
		"matches it against Korean government relief programs and simulates the\n" +
		"before/after payment schedules.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if debugFlag {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-file]",
	Short: "Run the financial diagnosis over a request file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest(args[0])
		if err != nil {
			return err
		}

		result := analysis.NewAnalyzer().Analyze(req.AnalysisInput())
		log.Debug().
			Str("total_debt", result.TotalDebt.String()).
			Str("dti", result.DTI.String()).
			Str("risk", result.RiskLevel.String()).
			Msg("analysis complete")

		return render(&output.Report{Analysis: result})
	},
}

var matchCmd = &cobra.Command{
	Use:   "match [input-file]",
	Short: "Analyze and match against the five relief programs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest(args[0])
		if err != nil {
			return err
		}

		result := analysis.NewAnalyzer().Analyze(req.AnalysisInput())
		plans := policy.NewMatcher().MatchAll(result, policy.MatchContext{
			MonthlyIncome:    req.MonthlyIncome,
			HasRegularIncome: req.RegularIncome(),
		})
		log.Debug().Int("plans", len(plans)).Msg("matching complete")

		return render(&output.Report{Analysis: result, Plans: plans})
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [input-file]",
	Short: "Project before/after amortization for the request's simulation terms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest(args[0])
		if err != nil {
			return err
		}
		if req.Simulation == nil {
			return fmt.Errorf("request file has no simulation section")
		}

		result := simulation.Simulate(*req.Simulation)
		return render(&output.Report{Simulation: &result})
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Run the full pipeline and rank the matched plans",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := loadRequest(args[0])
		if err != nil {
			return err
		}

		result := analysis.NewAnalyzer().Analyze(req.AnalysisInput())
		plans := policy.NewMatcher().MatchAll(result, policy.MatchContext{
			MonthlyIncome:    req.MonthlyIncome,
			HasRegularIncome: req.RegularIncome(),
		})

		comparison, err := simulation.ComparePlans(simulation.CandidatesFromPlans(plans))
		if err != nil {
			return fmt.Errorf("no plans to compare: %w", err)
		}

		report := &output.Report{Analysis: result, Plans: plans, Comparison: comparison}
		if req.Simulation != nil {
			sim := simulation.Simulate(*req.Simulation)
			report.Simulation = &sim
		} else {
			// No explicit terms given: project the top-ranked plan.
			sim := simulation.Simulate(simulationFromPlan(req, result, plans[0]))
			report.Simulation = &sim
		}
		return render(report)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "saegil %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

func loadRequest(path string) (*config.Request, error) {
	req, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", path).
		Int("accounts", len(req.Accounts)).
		Int("other_debts", len(req.OtherDebts)).
		Msg("request loaded")
	return req, nil
}

func render(report *output.Report) error {
	f := output.GetFormatterByName(formatFlag)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", formatFlag)
	}
	text, err := f.Format(report)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, text)
	return nil
}

// simulationFromPlan builds simulation terms from a matched plan, used
// when a request omits explicit adjusted terms but wants a projection of
// its top-ranked plan.
func simulationFromPlan(req *config.Request, result *domain.DebtAnalysisResult, plan domain.RestructuringPlan) domain.SimulationInput {
	rate := plan.AdjustedInterestRate
	period := plan.AdjustedPeriodMonths
	reduction := plan.DebtReductionRate
	return domain.SimulationInput{
		CurrentDebt:           result.TotalDebt,
		CurrentMonthlyPayment: result.MonthlyPayment,
		CurrentInterestRate:   currentWeightedRate(req),
		AdjustedInterestRate:  &rate,
		AdjustedPeriodMonths:  &period,
		DebtReductionRate:     &reduction,
	}
}

// currentWeightedRate returns the debt-weighted average annual rate across
// the request's debts, or the engine default when no rate is declared.
func currentWeightedRate(req *config.Request) decimal.Decimal {
	weighted := decimal.Zero
	total := decimal.Zero
	for _, acct := range req.Accounts {
		if acct.IsDebt() && acct.InterestRate != nil {
			weighted = weighted.Add(acct.InterestRate.Mul(acct.DebtAmount()))
			total = total.Add(acct.DebtAmount())
		}
	}
	for _, debt := range req.OtherDebts {
		if !debt.InterestRate.IsZero() {
			weighted = weighted.Add(debt.InterestRate.Mul(debt.Amount))
			total = total.Add(debt.Amount)
		}
	}
	if total.IsZero() {
		return simulation.DefaultAdjustedRate
	}
	return weighted.Div(total)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "console", "output format: console, json, csv")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(analyzeCmd, matchCmd, simulateCmd, compareCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
