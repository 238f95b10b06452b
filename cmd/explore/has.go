package explore

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var hasCmd = &cobra.Command{
	Use:     "has <symbol> <attr>",
	Short:   "检查符号调试信息条目是否带有某属性",
	Aliases: []string{"h"},
	Annotations: map[string]string{
		cmdGroupAnnotation: cmdGroupQuery,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("参数错误")
		}

		ok, err := CurrentSession.view.HasAttr(CurrentSession.kind, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	},
}

func init() {
	exploreRootCmd.AddCommand(hasCmd)
}
