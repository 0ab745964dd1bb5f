// Package cli implements apdcalc commands.
package cli

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/avdva/apdecimal"
	"github.com/avdva/apdecimal/internal/calc"
)

const envPrefix = "APDCALC"

// config keys.
const (
	keyPrecision     = "precision"
	keySeparator     = "separator"
	keyMaxIterations = "max-iterations"
	keyJSON          = "json"
)

// Main returns the root command.
func Main() *cobra.Command {
	v := viper.New()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "apdcalc <operation> [operands...]",
		Short: "apdcalc evaluates arbitrary-precision decimal operations",
		Long: "apdcalc applies an operation to decimal operands and prints the result.\n" +
			"Run 'apdcalc list' to see all the operations.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, configFile, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runEval(cmd, v, args[0], args[1:])
			if err != nil {
				glog.Errorf("%s: %v", args[0], err)
			}
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (yaml, json, or toml)")
	flags.IntP(keyPrecision, "p", apdecimal.Precision, "number of fractional digits, -1 for all the digits of exact operations")
	flags.String(keySeparator, string(apdecimal.DecimalSeparator), "decimal separator of the output")
	flags.Int(keyMaxIterations, apdecimal.MaxIterations, "iteration limit of the series and root calculations")
	flags.Bool(keyJSON, false, "print the result as a json object")
	flags.AddGoFlagSet(flag.CommandLine)
	rootCmd.MarkPersistentFlagFilename("config")

	rootCmd.AddCommand(List())
	return rootCmd
}

// loadConfig merges the flags, APDCALC_* environment variables, and the config file,
// and applies the result to apdecimal.
func loadConfig(v *viper.Viper, configFile string, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, key := range []string{keyPrecision, keySeparator, keyMaxIterations, keyJSON} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return errors.Wrapf(err, "binding %q", key)
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %q", configFile)
		}
		glog.V(1).Infof("using config file %s", v.ConfigFileUsed())
	}

	sep := v.GetString(keySeparator)
	if sep != "." && sep != "," {
		return errors.Errorf("bad separator %q, expected '.' or ','", sep)
	}
	maxIter := v.GetInt(keyMaxIterations)
	if maxIter <= 0 {
		return errors.Errorf("bad iteration limit %d", maxIter)
	}
	apdecimal.DecimalSeparator = sep[0]
	apdecimal.MaxIterations = maxIter
	if prec := v.GetInt(keyPrecision); prec >= 0 {
		apdecimal.Precision = prec
	}
	glog.V(1).Infof("precision=%d separator=%q max-iterations=%d",
		v.GetInt(keyPrecision), apdecimal.DecimalSeparator, apdecimal.MaxIterations)
	return nil
}

func runEval(cmd *cobra.Command, v *viper.Viper, op string, args []string) error {
	prec := v.GetInt(keyPrecision)
	start := time.Now()
	result, err := calc.Eval(op, args, prec)
	if err != nil {
		return err
	}
	glog.V(1).Infof("%s%v took %v", op, args, time.Since(start))
	if v.GetBool(keyJSON) {
		data, err := result.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "marshaling result")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "{\"op\":%q,\"result\":%s}\n", op, data)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
