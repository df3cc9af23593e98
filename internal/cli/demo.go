package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xgx-io/errchain"
)

// NewDemoCmd returns the demo subcommand, which renders a single static
// error followed by a newline.
func NewDemoCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render a static example error",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := errchain.Static("Test!")
			defer errchain.Destroy(e)

			logger.Debug("rendering demo error", zap.Stringer("kind", e.Kind()))
			if rc := errchain.Fprint(cmd.OutOrStdout(), "", e, "\n"); rc < 0 {
				return fmt.Errorf("%w: status %d", ErrRender, rc)
			}
			return nil
		},
	}
}
