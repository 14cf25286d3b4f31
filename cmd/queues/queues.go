package queues

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/woojoong88/atomix/pkg/client"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var queueExample = `
# Add an item to a queue
atomix queue orders add hello

# Items may start with a dash
atomix queue orders add -1

# Take up to three items from a queue
atomix queue orders take 3

# Complete a task
atomix queue orders complete t1`

// NewCmds returns the queue commands: the phrase based "queue" command and
// the "queues" command for inspecting queue names.
func NewCmds(c client.Client) []*cobra.Command {
	return []*cobra.Command{QueueCmd(c), QueuesCmd(c)}
}

func QueueCmd(c client.Client) *cobra.Command {
	d := newDispatcher(
		newPhrase("queue {queue} add {item}", addItem),
		newPhrase("queue {queue} take [count]", takeItems),
		newPhrase("queue {queue} complete {task}", completeTask),
	)
	r := NewResource(c)

	cmd := &cobra.Command{
		Use:     "queue <queue> <action> [args]",
		Short:   "Add, take and complete queue items",
		Example: queueExample,
		Args:    cobra.ArbitraryArgs,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			switch len(args) {
			case 0:
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}

				var names []string
				for name := range r.Complete(ctx, toComplete) {
					names = append(names, name)
				}
				return names, cobra.ShellCompDirectiveNoFileComp
			case 1:
				var actions []string
				for _, action := range d.actions() {
					if strings.HasPrefix(action, toComplete) {
						actions = append(actions, action)
					}
				}
				return actions, cobra.ShellCompDirectiveNoFileComp
			default:
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.dispatch(cmd, c, append([]string{"queue"}, args...))
		},
	}

	// words after the queue name are arguments, never flags
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func QueuesCmd(c client.Client) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queues",
		Short: "Inspect queue names",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	cmd.AddCommand(ListQueuesCmd(c))
	cmd.AddCommand(SuggestQueueCmd(c))

	return cmd
}
