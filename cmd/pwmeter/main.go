// Package main provides the CLI entrypoint for pwmeter.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/pwmeter/internal/analyzer"
	"github.com/verte-zerg/pwmeter/internal/chart"
	"github.com/verte-zerg/pwmeter/internal/config"
	"github.com/verte-zerg/pwmeter/internal/feedback"
	"github.com/verte-zerg/pwmeter/internal/generator"
	"github.com/verte-zerg/pwmeter/internal/historyui"
	"github.com/verte-zerg/pwmeter/internal/model"
	"github.com/verte-zerg/pwmeter/internal/store"
	"github.com/verte-zerg/pwmeter/internal/tui"
	"github.com/verte-zerg/pwmeter/internal/wordlist"
)

const (
	defaultCount       = 1
	defaultCurveWindow = 5
	compositionWidth   = 24
)

var (
	meterReveal   bool
	meterDenylist string
	meterHistory  bool
	meterColor    bool

	checkJSON bool
	checkSave bool

	generateCount int
	generateSeed  int64
	generateSave  bool

	historySince       string
	historyLast        int
	historyCurveWindow int
	historySource      string
	historyPlain       bool
	historyClear       bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pwmeter",
		Short:         "Live password strength meter",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runMeterCmd,
	}

	rootCmd.PersistentFlags().StringVar(&meterDenylist, "denylist", "", "extra common-password list, one per line")
	rootCmd.PersistentFlags().BoolVar(&meterHistory, "history", true, "allow saving metrics to the history database")
	rootCmd.Flags().BoolVar(&meterReveal, "reveal", false, "show the password while typing")
	rootCmd.Flags().BoolVar(&meterColor, "color", true, "colour the composition chart")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func loadMeterConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "reveal", &meterReveal, fileCfg.Meter.Reveal)
	applyStringConfig(cmd, "denylist", &meterDenylist, fileCfg.Meter.Denylist)
	applyBoolConfig(cmd, "history", &meterHistory, fileCfg.Meter.History)
	applyBoolConfig(cmd, "color", &meterColor, fileCfg.Meter.Color)
	if fileCfg.Generate.Count != nil && !flagChanged(cmd, "count") {
		generateCount = *fileCfg.Generate.Count
	}
	if fileCfg.Generate.Seed != nil && !flagChanged(cmd, "seed") {
		generateSeed = *fileCfg.Generate.Seed
	}
	return model.Config{
		Reveal:   meterReveal,
		Denylist: meterDenylist,
		History:  meterHistory,
		Color:    meterColor,
	}, nil
}

func runMeterCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMeterConfig(cmd)
	if err != nil {
		return err
	}
	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}

	var st *store.Store
	if cfg.History {
		st, err = store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer closeStore(st)
	}

	m := tui.NewModel(cfg, a, generator.New(), st)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Analyze a password and print the report",
		Long:  "Analyze a password. Without an argument the password is read from stdin (hidden when stdin is a terminal).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheckCmd,
	}
	cmd.Flags().BoolVar(&checkJSON, "json", false, "print the analysis as JSON")
	cmd.Flags().BoolVar(&checkSave, "save", false, "record the metrics in history")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadMeterConfig(cmd)
	if err != nil {
		return err
	}
	a, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		password, err = readPassword(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	result := a.Analyze(password)
	estimate := analyzer.EstimateStrength(password, nil)
	out := cmd.OutOrStdout()
	if checkJSON {
		if err := writeJSON(out, result, estimate); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if err := writeReport(out, result, estimate); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if checkSave {
		return saveEntries(cfg, []analyzer.Result{result}, model.SourceTyped)
	}
	return nil
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate strong passwords (not cryptographically secure)",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	cmd.Flags().IntVar(&generateCount, "count", defaultCount, "number of passwords")
	cmd.Flags().Int64Var(&generateSeed, "seed", 0, "random seed (0 uses the current time)")
	cmd.Flags().BoolVar(&generateSave, "save", false, "record the metrics in history")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMeterConfig(cmd)
	if err != nil {
		return err
	}
	genCfg := model.GenerateConfig{Count: generateCount, Seed: generateSeed}
	if err := validateGenerateConfig(genCfg); err != nil {
		return err
	}
	passwords := newGenerator(genCfg).GenerateN(genCfg.Count)
	results := make([]analyzer.Result, 0, len(passwords))
	for _, pw := range passwords {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), pw); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		results = append(results, analyzer.Analyze(pw))
	}
	if generateSave {
		return saveEntries(cfg, results, model.SourceGenerated)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved analysis history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N entries")
	cmd.Flags().IntVar(&historyCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().StringVar(&historySource, "source", "", "only entries from this source (typed|generated)")
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print text output instead of the TUI")
	cmd.Flags().BoolVar(&historyClear, "clear", false, "delete all saved history")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyCurveWindow < 1 {
		return fmt.Errorf("--curve-window must be >= 1")
	}
	source, err := parseSource(historySource)
	if err != nil {
		return err
	}
	cfg := model.HistoryConfig{
		Since:       sinceTime,
		Last:        historyLast,
		CurveWindow: historyCurveWindow,
		Source:      source,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)

	ctx := context.Background()
	if historyClear {
		n, err := st.Clear(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		logErrf("Deleted %d entries\n", n)
		return nil
	}

	if historyPlain {
		return writeHistory(ctx, cmd.OutOrStdout(), st, cfg)
	}

	program := tea.NewProgram(historyui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func validateGenerateConfig(cfg model.GenerateConfig) error {
	if cfg.Count <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	return nil
}

func newGenerator(cfg model.GenerateConfig) *generator.Generator {
	if cfg.Seed == 0 {
		return generator.New()
	}
	return generator.NewWithSource(rand.NewSource(cfg.Seed))
}

func parseSource(value string) (model.Source, error) {
	switch model.Source(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return "", nil
	case model.SourceTyped:
		return model.SourceTyped, nil
	case model.SourceGenerated:
		return model.SourceGenerated, nil
	}
	return "", fmt.Errorf("invalid --source value %q (use typed or generated)", value)
}

func newAnalyzer(cfg model.Config) (*analyzer.Analyzer, error) {
	path := cfg.Denylist
	if path == "" {
		path = config.DefaultDenylistPath()
		if _, err := os.Stat(path); err != nil {
			return analyzer.New(), nil
		}
	}
	words, err := wordlist.LoadWords(path, wordlist.FilterPrintable)
	if err != nil {
		return nil, fmt.Errorf("failed to load denylist %s: %w", path, err)
	}
	return analyzer.New(analyzer.WithDenylist(words)), nil
}

func readPassword(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logErrf("Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		logErrln()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func saveEntries(cfg model.Config, results []analyzer.Result, source model.Source) error {
	if !cfg.History {
		return fmt.Errorf("history is disabled")
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeStore(st)
	ctx := context.Background()
	for _, r := range results {
		if _, err := st.InsertEntry(ctx, store.EntryFromResult(r, source, time.Now())); err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
	}
	return nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

type checkOutput struct {
	Length           int            `json:"length"`
	HasUpper         bool           `json:"hasUpper"`
	HasLower         bool           `json:"hasLower"`
	HasNumbers       bool           `json:"hasNumbers"`
	HasSpecial       bool           `json:"hasSpecial"`
	CharacterCounts  map[string]int `json:"characterCounts"`
	HasSequence      bool           `json:"hasSequence"`
	IsCommon         bool           `json:"isCommon"`
	Score            int            `json:"score"`
	Strength         string         `json:"strength"`
	Entropy          int            `json:"entropy"`
	Combinations     string         `json:"combinations"`
	CrackTime        string         `json:"crackTime"`
	CrackTimeTier    int            `json:"crackTimeTier"`
	Hint             string         `json:"hint"`
	ZxcvbnScore      int            `json:"zxcvbnScore"`
	ZxcvbnCrackTime  string         `json:"zxcvbnCrackTime"`
	ZxcvbnTruncated  bool           `json:"zxcvbnTruncated,omitempty"`
	RequirementsMet  int            `json:"requirementsMet"`
	RequirementCount int            `json:"requirementCount"`
}

func writeJSON(w io.Writer, r analyzer.Result, est analyzer.Estimate) error {
	reqs := feedback.Requirements(r)
	met := 0
	for _, req := range reqs {
		if req.Valid {
			met++
		}
	}
	out := checkOutput{
		Length:     r.Length,
		HasUpper:   r.HasUpper,
		HasLower:   r.HasLower,
		HasNumbers: r.HasNumbers,
		HasSpecial: r.HasSpecial,
		CharacterCounts: map[string]int{
			"upper":   r.Counts.Upper,
			"lower":   r.Counts.Lower,
			"numbers": r.Counts.Numbers,
			"special": r.Counts.Special,
		},
		HasSequence:      r.HasSequence,
		IsCommon:         r.IsCommon,
		Score:            r.Score,
		Strength:         string(r.Strength),
		Entropy:          r.Entropy,
		Combinations:     r.CombinationsText,
		CrackTime:        r.CrackTime,
		CrackTimeTier:    analyzer.CrackTimeTier(r.Length),
		Hint:             feedback.Hint(r),
		ZxcvbnScore:      est.Score,
		ZxcvbnCrackTime:  est.CrackTime,
		ZxcvbnTruncated:  est.Truncated,
		RequirementsMet:  met,
		RequirementCount: len(reqs),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeReport(w io.Writer, r analyzer.Result, est analyzer.Estimate) error {
	lines := []string{
		fmt.Sprintf("Strength: %s (Score: %d/100)", feedback.Label(r.Strength), r.Score),
		"",
	}
	lines = append(lines, chart.FormatTable(nil, feedback.StatRows(r, est), nil)...)
	lines = append(lines, "", "Requirements")
	reqRows := make([][]string, 0, 7)
	for _, req := range feedback.Requirements(r) {
		mark := "[ ]"
		if req.Valid {
			mark = "[x]"
		}
		reqRows = append(reqRows, []string{mark, req.Title, req.Value})
	}
	lines = append(lines, chart.FormatTable(nil, reqRows, map[int]bool{2: true})...)
	lines = append(lines, "", "Composition")
	lines = append(lines, chart.CompositionBars(chart.CompositionSlices(r.Counts), compositionWidth, nil))
	lines = append(lines, "", feedback.Hint(r))
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func writeHistory(ctx context.Context, w io.Writer, st *store.Store, cfg model.HistoryConfig) error {
	sum, err := st.Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to load history summary: %w", err)
	}
	if err := chart.RenderHistorySummary(w, sum); err != nil {
		return err
	}
	entries, err := st.ListEntries(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}
	if err := chart.RenderScoreCurve(w, entries, cfg.CurveWindow, 0, 10, false); err != nil {
		return err
	}
	return chart.RenderHistoryTable(w, entries)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# pwmeter configuration
# Uncomment a value to enable it. CLI flags override config values.

[meter]
# reveal = false          # Show the password while typing
# denylist = %q           # Extra common-password list, one per line
# history = true          # Allow saving metrics (never the password) to history
# color = true            # Colour the composition chart

[generate]
# count = %d              # Passwords printed by 'pwmeter generate'
# seed = 0                # Fixed seed for reproducible output (0 = time-based)
`,
		config.DefaultDenylistPath(),
		defaultCount,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
