package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blogview-app/blogview/internal/blogapi"
	"github.com/blogview-app/blogview/internal/cache"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type cliApp struct {
	client    *blogapi.Client
	tokenFile string
}

func newRootCmd() *cobra.Command {
	app := &cliApp{}

	root := &cobra.Command{
		Use:           "blogctl",
		Short:         "Admin tooling for the blogview site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	root.PersistentFlags().String("api", "", "base URL of the blog API (or BLOGCTL_API_BASE_URL)")
	root.PersistentFlags().String("token-file", "", "path of the stored auth token")

	viper.SetEnvPrefix("blogctl")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("api_base_url", root.PersistentFlags().Lookup("api"))

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newPostCmd(app),
		newUploadCmd(app),
		newLikeCmd(app),
		newCommentCmd(app),
	)

	return root
}

// setup builds the API client shared by every subcommand. A stored token
// is loaded when present; commands that need one fail later with a clear
// error if it is missing.
func (app *cliApp) setup(cmd *cobra.Command) error {
	baseURL := viper.GetString("api_base_url")
	if baseURL == "" {
		return fmt.Errorf("no API base URL: pass --api or set BLOGCTL_API_BASE_URL")
	}

	tokenFile, err := cmd.Flags().GetString("token-file")
	if err != nil {
		return err
	}
	if tokenFile == "" {
		tokenFile, err = defaultTokenPath()
		if err != nil {
			return err
		}
	}
	app.tokenFile = tokenFile

	app.client = blogapi.New(baseURL, cache.New(cache.DefaultTTL))

	if token, err := loadToken(tokenFile); err == nil {
		app.client.SetToken(token)
	}

	return nil
}
