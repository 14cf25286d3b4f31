package queues

import (
	"github.com/spf13/cobra"
	"github.com/woojoong88/atomix/pkg/client"
)

var listQueuesExample = `
# List all queues
atomix queues list

# List queues starting with "ord"
atomix queues list ord`

func ListQueuesCmd(c client.Client) *cobra.Command {
	r := NewResource(c)

	cmd := &cobra.Command{
		Use:     "list [prefix]",
		Short:   "List queue names",
		Example: listQueuesExample,
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var prefix string
			if len(args) == 1 {
				prefix = args[0]
			}

			for name := range r.Complete(cmd.Context(), prefix) {
				cmd.Println(name)
			}
		},
	}

	return cmd
}

func SuggestQueueCmd(c client.Client) *cobra.Command {
	r := NewResource(c)

	cmd := &cobra.Command{
		Use:    "suggest <prefix>",
		Short:  "Print the remainder of the first queue name matching prefix",
		Hidden: true,
		Args:   cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if suffix, ok := r.Suggest(cmd.Context(), args[0]); ok {
				cmd.Println(suffix)
			}
		},
	}

	return cmd
}
