package explore

import (
	"github.com/spf13/cobra"
)

var exitCmd = &cobra.Command{
	Use:     "exit",
	Short:   "结束查询会话",
	Aliases: []string{"q", "quit"},
	Annotations: map[string]string{
		cmdGroupAnnotation: cmdGroupSession,
	},
	Run: func(cmd *cobra.Command, args []string) {
		CurrentSession.Stop()
	},
}

func init() {
	exploreRootCmd.AddCommand(exitCmd)
}
