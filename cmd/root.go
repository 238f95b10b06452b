/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/hitzhangjie/dwat/pkg/dump"
	"github.com/hitzhangjie/dwat/pkg/dwarfdump"
	"github.com/hitzhangjie/dwat/pkg/inspect"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	flagSymbols string
	flagVar     bool
	flagVerbose bool

	// inspector built once per session in PersistentPreRunE, after the
	// dumper has been resolved
	inspector *inspect.Inspector
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dwat",
	Short: "查询二进制DWARF调试信息中的属性",
	Long: `查询二进制DWARF调试信息中的属性。

dwat通过nm定位符号地址，再在llvm-dwarfdump的文本输出中定位该符号对应的
调试信息条目(DIE)，回答“有没有某属性”、“属性值是什么”这类问题，
常用于验证编译、strip之后调试信息是否完整。`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		// resolve the dumper once; without it no query can run
		path, err := dump.DiscoverDumper(viper.GetString("dumper"))
		if err != nil {
			return err
		}

		inspector, err = inspect.New(inspect.Config{Dumper: path})
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.dwat.yaml)")
	rootCmd.PersistentFlags().String("dumper", "", "llvm-dwarfdump executable to use")
	rootCmd.PersistentFlags().StringVar(&flagSymbols, "symbols", "", "binary to read the symbol table from (default: the inspected binary)")
	rootCmd.PersistentFlags().BoolVar(&flagVar, "var", false, "treat the symbol as a variable instead of a function")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log external tool invocations")

	viper.BindPFlag("dumper", rootCmd.PersistentFlags().Lookup("dumper"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in home directory with name ".dwat" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".dwat")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logrus.WithField("config", viper.ConfigFileUsed()).Debug("using config file")
	}
}

// symbolKind the kind selected by the --var flag
func symbolKind() dwarfdump.SymbolKind {
	if flagVar {
		return dwarfdump.KindVariable
	}
	return dwarfdump.KindFunction
}

// view binds the session inspector to the inspected binary, honoring the
// --symbols override for reading the symbol table from an unstripped copy
func view(bin string) *inspect.View {
	symBin := bin
	if flagSymbols != "" {
		symBin = flagSymbols
	}
	return inspector.On(symBin, bin)
}
