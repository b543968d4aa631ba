package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/schukonf/viperadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/volsum"
	"github.com/npillmayer/volsum/readout"
	"github.com/npillmayer/volsum/series"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "volavg",
	Short: "Running average volumes for price/volume time series",
	Long: `volavg reads Alpha Vantage time series payloads and prints the average
traded volume from the start of a series up to given periods.`,
	SilenceUsage: true,
	RunE:         run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.volavg.yaml)")
	flags.String("symbol", "", "symbol of the instrument, for display")
	for _, p := range []series.Period{series.Daily, series.Weekly, series.Monthly} {
		flags.String(p.String(), "", p.String()+" time series payload file")
	}
	flags.String(series.Yearly.String(), "", "yearly series file in time series payload format (default: aggregated from monthly)")
	for _, p := range []series.Period{series.Daily, series.Weekly, series.Monthly} {
		flags.String("sma-"+p.String(), "", p.String()+" SMA payload file")
	}
	flags.String("quote", "", "global quote payload file")
	flags.String("period", series.Monthly.String(), "period to show: daily, weekly, monthly or yearly")
	flags.IntSlice("at", nil, "right edges (0-based period index) to print averages for")
	flags.Bool("html", false, "render readouts as HTML")
	flags.String("trace", "Error", "trace level: Debug, Info or Error")

	viper.BindPFlags(flags)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".volavg")
	}
	viper.SetEnvPrefix("volavg")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// initTracing routes all tracers to the Go log package, at the level given
// by flag --trace.
func initTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := viperadapter.New("volavg")
	conf.InitDefaults()
	level := viper.GetString("trace")
	conf.Set("tracing.adapter", "go")
	conf.Set("tracelevel.root", level)
	conf.Set("tracelevel.volsum", level)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.TraceLevelFromString(level))
	return nil
}

func sourcesFromConfig() series.Sources {
	src := series.Sources{
		Symbol: viper.GetString("symbol"),
		Series: make(map[series.Period]string),
		SMA:    make(map[series.Period]string),
		Quote:  viper.GetString("quote"),
	}
	for _, p := range series.Periods {
		if name := viper.GetString(p.String()); name != "" {
			src.Series[p] = name
		}
		if name := viper.GetString("sma-" + p.String()); name != "" {
			src.SMA[p] = name
		}
	}
	return src
}

func run(cmd *cobra.Command, args []string) error {
	if err := initTracing(); err != nil {
		return err
	}
	period, err := series.ParsePeriod(viper.GetString("period"))
	if err != nil {
		return err
	}
	src := sourcesFromConfig()
	if len(src.Series) == 0 {
		return fmt.Errorf("no time series given; use --%s, --%s, --%s or --%s",
			series.Daily, series.Weekly, series.Monthly, series.Yearly)
	}
	set, err := series.LoadSet(context.Background(), src)
	if err != nil {
		return err
	}
	r, err := readout.New(set, period)
	if err != nil {
		return err
	}
	defer r.Close()
	out := newPrinter(cmd, viper.GetBool("html"), set.Symbol)
	if err := out.print(r, r.Current()); err != nil {
		return err
	}
	edges := viper.GetIntSlice("at")
	volsum.T().Infof("volavg: %s readout for %q, %d right edges", period, set.Symbol, len(edges))
	for _, at := range edges {
		u, err := r.Hover(at)
		if err != nil {
			return err
		}
		if err := out.print(r, u); err != nil {
			return err
		}
	}
	return nil
}
