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

	"github.com/spf13/cobra"
)

var flagLong bool

// attrsCmd represents the attrs command
var attrsCmd = &cobra.Command{
	Use:   "attrs <binary> <symbol>",
	Short: "列出符号调试信息条目的全部属性",
	Long: `列出符号调试信息条目的全部属性。

默认按条目内顺序列出属性名，加-l同时显示属性值，方便编写测试断言时
查看条目的完整内容。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("参数错误")
		}

		attrs, err := view(args[0]).Attrs(symbolKind(), args[1])
		if err != nil {
			return err
		}

		for _, a := range attrs {
			if flagLong {
				fmt.Printf("%s\t%s\n", a.Name, a.Value)
			} else {
				fmt.Println(a.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(attrsCmd)
	attrsCmd.Flags().BoolVarP(&flagLong, "long", "l", false, "show attribute values as well")
}
