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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// valueCmd represents the value command
var valueCmd = &cobra.Command{
	Use:   "value <binary> <symbol> <attr>",
	Short: "输出符号调试信息条目中某属性的值",
	Long: `输出符号调试信息条目中某属性的值。

同名属性取条目内的第一个。条目存在但没有该属性时，输出提示并以1退出，
这属于正常查询结果而非错误。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("参数错误")
		}

		val, ok, err := view(args[0]).AttrValue(symbolKind(), args[1], args[2])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "%s %s has no DW_AT_%s\n", symbolKind(), args[1], args[2])
			os.Exit(1)
		}

		fmt.Println(val)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(valueCmd)
}
