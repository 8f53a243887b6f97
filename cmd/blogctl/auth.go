package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogview-app/blogview/internal/blogapi"
)

func credentialFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("username", "u", "", "admin username")
	cmd.Flags().StringP("password", "p", "", "admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
}

func credentialsFromFlags(cmd *cobra.Command) blogapi.Credentials {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	return blogapi.Credentials{Username: username, Password: password}
}

func newLoginCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the token for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.client.Login(cmd.Context(), credentialsFromFlags(cmd))
			if err != nil {
				return err
			}

			if err := saveToken(app.tokenFile, token); err != nil {
				return fmt.Errorf("save token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in, token stored at %s\n", app.tokenFile)
			return nil
		},
	}

	credentialFlags(cmd)
	return cmd
}

func newRegisterCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.client.Register(cmd.Context(), credentialsFromFlags(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Account created, now run: blogctl login")
			return nil
		},
	}

	credentialFlags(cmd)
	return cmd
}
