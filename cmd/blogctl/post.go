package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blogview-app/blogview/internal/blogapi"
)

func newPostCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create, update or delete posts",
	}

	cmd.AddCommand(
		newPostCreateCmd(app),
		newPostUpdateCmd(app),
		newPostDeleteCmd(app),
	)

	return cmd
}

func postFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "post title")
	cmd.Flags().String("content", "", "post body in markdown")
	cmd.Flags().String("content-file", "", "read the post body from a file ('-' for stdin)")
	cmd.Flags().StringSlice("tags", nil, "comma-separated tags")
	cmd.Flags().String("image", "", "cover image URL")
}

// postContent resolves the body from --content or --content-file.
func postContent(cmd *cobra.Command) (string, error) {
	content, _ := cmd.Flags().GetString("content")
	file, _ := cmd.Flags().GetString("content-file")

	switch {
	case content != "" && file != "":
		return "", fmt.Errorf("--content and --content-file are mutually exclusive")
	case file == "":
		return content, nil
	case file == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

func newPostCreateCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new post",
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := postContent(cmd)
			if err != nil {
				return err
			}

			title, _ := cmd.Flags().GetString("title")
			tags, _ := cmd.Flags().GetStringSlice("tags")
			image, _ := cmd.Flags().GetString("image")

			post, err := app.client.CreatePost(cmd.Context(), blogapi.CreatePostRequest{
				Title:     title,
				Content:   content,
				Tags:      blogapi.TagList(tags),
				BlogImage: image,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created post %s: %s\n", post.ID, post.Title)
			return nil
		},
	}

	postFlags(cmd)
	return cmd
}

func newPostUpdateCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a post's title, body and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := postContent(cmd)
			if err != nil {
				return err
			}

			title, _ := cmd.Flags().GetString("title")
			tags, _ := cmd.Flags().GetStringSlice("tags")
			image, _ := cmd.Flags().GetString("image")

			post, err := app.client.UpdatePost(cmd.Context(), args[0], blogapi.UpdatePostRequest{
				Title:     title,
				Content:   content,
				Tags:      blogapi.TagList(tags),
				BlogImage: image,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated post %s: %s\n", post.ID, post.Title)
			return nil
		},
	}

	postFlags(cmd)
	return cmd
}

func newPostDeleteCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more posts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed []string
			for _, id := range args {
				if err := app.client.DeletePost(cmd.Context(), id); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "delete %s: %v\n", id, err)
					failed = append(failed, id)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted post %s\n", id)
			}

			if len(failed) > 0 {
				return fmt.Errorf("failed to delete: %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}

	return cmd
}
