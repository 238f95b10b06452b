package explore

import (
	"fmt"

	"github.com/hitzhangjie/dwat/pkg/dwarfdump"
	"github.com/spf13/cobra"
)

var kindCmd = &cobra.Command{
	Use:     "kind [fn|var]",
	Short:   "查看或切换查询的符号类型",
	Aliases: []string{"k"},
	Annotations: map[string]string{
		cmdGroupAnnotation: cmdGroupSession,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Println(CurrentSession.kind)
			return nil
		}

		switch args[0] {
		case "fn", "function":
			CurrentSession.kind = dwarfdump.KindFunction
		case "var", "variable":
			CurrentSession.kind = dwarfdump.KindVariable
		default:
			return fmt.Errorf("unknown symbol kind: %s", args[0])
		}
		fmt.Println(CurrentSession.kind)
		return nil
	},
}

func init() {
	exploreRootCmd.AddCommand(kindCmd)
}
