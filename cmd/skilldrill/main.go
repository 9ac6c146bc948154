package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/skilldrill/internal/config"
	"github.com/san-kum/skilldrill/internal/field"
	"github.com/san-kum/skilldrill/internal/logging"
	"github.com/san-kum/skilldrill/internal/session"
	"github.com/san-kum/skilldrill/internal/storage"
	"github.com/san-kum/skilldrill/internal/templates"
	"github.com/san-kum/skilldrill/internal/viz"
)

var (
	dataDir    string
	configFile string
	puzzleFile string
	theme      string
	logFile    string
	verbose    bool
	steps      int

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skilldrill",
		Short: "counting puzzles and progress wizards for the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runField,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", config.DefaultLogFile, "log file name inside the data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	fieldCmd := &cobra.Command{
		Use:   "field [preset]",
		Short: "count the marked cubes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runField,
	}
	fieldCmd.Flags().StringVar(&puzzleFile, "file", "", "puzzle file (yaml with field and answer)")

	wizardCmd := &cobra.Command{
		Use:   "wizard",
		Short: "progress wizard playground",
		Args:  cobra.NoArgs,
		RunE:  runWizard,
	}
	wizardCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")

	drillCmd := &cobra.Command{
		Use:   "drill [preset...]",
		Short: "several puzzles in a row under a progress wizard",
		RunE:  runDrill,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROWS\tCOLS\tANSWER")
			for _, name := range config.ListPresets() {
				d, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, len(d.Field), len(d.Field[0]), d.Answer)
			}
			return w.Flush()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored attempts",
		Args:  cobra.NoArgs,
		RunE:  listAttempts,
	}

	editsCmd := &cobra.Command{
		Use:   "edits [attempt_id]",
		Short: "show the response-change log of an attempt",
		Args:  cobra.ExactArgs(1),
		RunE:  showEdits,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "plot accuracy over stored attempts",
		Args:  cobra.NoArgs,
		RunE:  plotStats,
	}

	rootCmd.AddCommand(fieldCmd, wizardCmd, drillCmd, presetsCmd, listCmd, editsCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config file and applies flag overrides; flags win only
// when set explicitly.
func setup(cmd *cobra.Command) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("theme") || configFile == "" {
		cfg.Theme = theme
	}
	if flags.Changed("log") || configFile == "" {
		cfg.LogFile = logFile
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Lookup("steps") != nil && (flags.Changed("steps") || configFile == "") {
		cfg.Wizard.Steps = steps
	}

	logPath := ""
	if cfg.LogFile != "" {
		logPath = filepath.Join(cfg.DataDir, cfg.LogFile)
	}
	var err error
	logger, err = logging.New(logPath, cfg.Verbose)
	return err
}

func openStore() (*storage.Store, error) {
	st := storage.New(filepath.Join(cfg.DataDir, "attempts"))
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func resolvePuzzle(args []string) (string, field.Data, error) {
	if puzzleFile != "" {
		d, err := config.LoadPuzzle(puzzleFile)
		if err != nil {
			return "", field.Data{}, fmt.Errorf("failed to load puzzle: %w", err)
		}
		name := filepath.Base(puzzleFile)
		return name[:len(name)-len(filepath.Ext(name))], d, nil
	}
	if len(args) > 0 {
		d, ok := config.GetPreset(args[0])
		if !ok {
			return "", field.Data{}, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		return args[0], d, nil
	}
	d, err := cfg.PuzzleData()
	if err != nil {
		return "", field.Data{}, err
	}
	name := cfg.Puzzle.Preset
	if len(cfg.Puzzle.Field) > 0 {
		name = "custom"
	}
	return name, d, nil
}

func runField(cmd *cobra.Command, args []string) error {
	name, data, err := resolvePuzzle(args)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}

	tpl, err := templates.Default().Resolve(templates.FieldSimulator)
	if err != nil {
		return err
	}

	rec := session.NewRecorder(name, data, logger, session.WithStore(st))
	p, err := field.New(data, rec)
	if err != nil {
		return fmt.Errorf("puzzle %s: %w", name, err)
	}
	logger.Info("puzzle started", zap.String("puzzle", name), zap.Int("rows", len(p.Rows())))

	if err := viz.RunField(viz.NewFieldModel(tpl, p, viz.GetTheme(cfg.Theme))); err != nil {
		return err
	}

	if correct, ok := rec.Verdict(); ok {
		fmt.Printf("answer: %s (%s)\n", p.Response(), verdictWord(correct))
		if id := rec.AttemptID(); id != "" {
			fmt.Printf("attempt id: %s\n", id)
		}
	}
	return rec.SaveErr()
}

func runWizard(cmd *cobra.Command, args []string) error {
	tpl, err := templates.Default().Resolve(templates.CounterWizard)
	if err != nil {
		return err
	}
	m, err := viz.NewWizardModel(tpl, cfg.Wizard.Steps, cfg.Wizard.PulseDelay, viz.GetTheme(cfg.Theme))
	if err != nil {
		return err
	}
	return viz.RunWizard(m)
}

func runDrill(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}

	entries := make([]session.Entry, 0, len(names))
	for _, name := range names {
		d, ok := config.GetPreset(name)
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		entries = append(entries, session.Entry{Name: name, Data: d})
	}

	drill, err := session.NewDrill(entries)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}

	hosts := func(e session.Entry) field.Host {
		return session.NewRecorder(e.Name, e.Data, logger, session.WithStore(st))
	}
	m, err := viz.NewDrillModel(templates.Default(), drill, hosts, cfg.Wizard.PulseDelay, viz.GetTheme(cfg.Theme), logger)
	if err != nil {
		return err
	}
	return viz.RunDrill(m)
}

func listAttempts(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	attempts, err := st.List()
	if err != nil {
		return err
	}

	if len(attempts) == 0 {
		fmt.Println("no attempts found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPUZZLE\tTIME\tANSWER\tRESPONSE\tRESULT\tEDITS\tDURATION")

	for _, a := range attempts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%.1fs\n",
			a.ID,
			a.Puzzle,
			a.Timestamp.Format("2006-01-02 15:04:05"),
			a.Answer,
			a.Response,
			verdictWord(a.Correct),
			a.Edits,
			a.Duration,
		)
	}

	return w.Flush()
}

func showEdits(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	edits, err := st.LoadEdits(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ELAPSED\tRESPONSE")
	for _, e := range edits {
		fmt.Fprintf(w, "%.2fs\t%q\n", e.Elapsed.Seconds(), e.Response)
	}
	return w.Flush()
}

func plotStats(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	attempts, err := st.List()
	if err != nil {
		return err
	}
	if len(attempts) < 2 {
		fmt.Printf("need at least 2 attempts to plot, have %d\n", len(attempts))
		return nil
	}

	acc := storage.RunningAccuracy(attempts)
	percent := make([]float64, len(acc))
	for i, v := range acc {
		percent[i] = v * 100
	}

	graph := asciigraph.Plot(percent,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(100),
		asciigraph.Caption("running accuracy (%)"),
	)
	fmt.Println(graph)
	fmt.Println()
	fmt.Printf("attempts: %d\n", len(attempts))
	fmt.Printf("accuracy: %.1f%%\n", percent[len(percent)-1])
	return nil
}

func verdictWord(correct bool) string {
	if correct {
		return "correct"
	}
	return "wrong"
}
