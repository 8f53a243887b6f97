package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newUploadCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image, or attach it to a post with --post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			postID, _ := cmd.Flags().GetString("post")
			filename := filepath.Base(args[0])

			var url string
			if postID != "" {
				url, err = app.client.AttachImage(cmd.Context(), postID, filename, file)
			} else {
				url, err = app.client.UploadImage(cmd.Context(), filename, file)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().String("post", "", "attach the image to this post id")
	return cmd
}

func newLikeCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "like <id>",
		Short: "Like a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			likes, err := app.client.LikePost(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Post %s now has %d likes\n", args[0], likes)
			return nil
		},
	}
}

func newCommentCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment <id>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			text, _ := cmd.Flags().GetString("text")

			err := app.client.AddComment(cmd.Context(), args[0], username, text)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Comment added")
			return nil
		},
	}

	cmd.Flags().StringP("username", "u", "", "display name for the comment")
	cmd.Flags().StringP("text", "t", "", "comment text")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}
