package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brk3/quit/internal/apiclient"
	"github.com/brk3/quit/pkg/versioninfo"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `The "version" command displays the current version info for both client
and server if an api_base_url is configured.`,
		Annotations: map[string]string{skipStoreAnnotation: ""},
		Run: func(cmd *cobra.Command, args []string) {
			version(cmd, a)
		},
	}
}

func version(cmd *cobra.Command, a *app) {
	cmd.Printf("Client Version: %s\n", versioninfo.Version)

	if a.cfg.APIBaseURL == "" {
		return
	}
	serverVersion, err := apiclient.New(a.cfg.APIBaseURL).Version(cmd.Context())
	if err != nil {
		cmd.Println("Error fetching server version:", err)
		return
	}
	cmd.Printf("Server Version: %s\n", serverVersion.Version)
}
