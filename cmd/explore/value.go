package explore

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var valueCmd = &cobra.Command{
	Use:     "value <symbol> <attr>",
	Short:   "输出符号调试信息条目中某属性的值",
	Aliases: []string{"v"},
	Annotations: map[string]string{
		cmdGroupAnnotation: cmdGroupQuery,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("参数错误")
		}

		val, ok, err := CurrentSession.view.AttrValue(CurrentSession.kind, args[0], args[1])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("%s %s has no DW_AT_%s\n", CurrentSession.kind, args[0], args[1])
			return nil
		}
		fmt.Println(val)
		return nil
	},
}

func init() {
	exploreRootCmd.AddCommand(valueCmd)
}
