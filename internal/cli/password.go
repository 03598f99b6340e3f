package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	auth "Annulus/internal/auth"

	"github.com/spf13/cobra"
)

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long: `Read a password from stdin and print its bcrypt hash, suitable for the
ADMIN_PASSWORD_HASH setting of the API server.

Example:
  echo -n 's3cret' | annulus hash-password`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return errors.New("no password on stdin")
			}
			password := strings.TrimRight(line, "\r\n")
			if len(password) < 6 {
				return errors.New("password too short")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
