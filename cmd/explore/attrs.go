package explore

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var attrsCmd = &cobra.Command{
	Use:     "attrs <symbol>",
	Short:   "列出符号调试信息条目的全部属性",
	Aliases: []string{"a"},
	Annotations: map[string]string{
		cmdGroupAnnotation: cmdGroupQuery,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("参数错误")
		}

		attrs, err := CurrentSession.view.Attrs(CurrentSession.kind, args[0])
		if err != nil {
			return err
		}

		for _, a := range attrs {
			fmt.Printf("%-24s\t%s\n", a.Name, a.Value)
		}
		return nil
	},
}

func init() {
	exploreRootCmd.AddCommand(attrsCmd)
}
