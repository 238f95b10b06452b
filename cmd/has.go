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

// hasCmd represents the has command
var hasCmd = &cobra.Command{
	Use:   "has <binary> <symbol> <attr>",
	Short: "检查符号调试信息条目是否带有某属性",
	Long: `检查符号调试信息条目是否带有某属性。

属性名不需要DW_AT_前缀，比如: dwat has ./a.out main noreturn。
存在时输出true并以0退出，不存在时输出false并以1退出。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("参数错误")
		}

		ok, err := view(args[0]).HasAttr(symbolKind(), args[1], args[2])
		if err != nil {
			return err
		}

		fmt.Println(ok)
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hasCmd)
}
