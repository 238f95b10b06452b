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

	"github.com/hitzhangjie/dwat/cmd/explore"
	"github.com/spf13/cobra"
)

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore <binary>",
	Short: "交互式探索二进制的调试信息属性",
	Long: `交互式探索二进制的调试信息属性。

进入交互会话后可以连续对同一个二进制执行attrs、has、value查询，
用kind在函数、变量之间切换，exit退出。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("参数错误")
		}

		explore.CurrentSession = explore.NewSession(view(args[0]))
		explore.CurrentSession.Start()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
