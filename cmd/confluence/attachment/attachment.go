// Package attachmentcmder implements the page attachment skill commands.
package attachmentcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grandcamel/confluence-assistant-skills/cmd/confluence/cmdutil"
	"github.com/grandcamel/confluence-assistant-skills/pkg/cliui"
	"github.com/grandcamel/confluence-assistant-skills/pkg/confluence"
)

// NewAttachmentCmd returns the attachment skill command and its subcommands.
func NewAttachmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attachment",
		Short: "Work with page attachments",
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newUploadCmd())
	cmd.AddCommand(newDownloadCmd())
	cmd.AddCommand(newUpdateCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <page-id>",
		Short: "List attachments on a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			attachments, err := rt.Service.ListAttachments(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(attachments); done {
				return err
			}

			if len(attachments) == 0 {
				fmt.Fprintf(rt.Out, "  %s\n", cliui.DimStyle.Render("no attachments"))
				return nil
			}
			for _, att := range attachments {
				fmt.Fprintf(rt.Out, "  %s %s\n",
					cliui.NameStyle.Render(att.Title),
					cliui.DimStyle.Render(fmt.Sprintf("(%s, %d bytes, id %s)", att.MediaType, att.FileSize, att.ID)),
				)
			}
			return nil
		},
	}
}

func newUploadCmd() *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "upload <page-id> <file>",
		Short: "Upload a file as a page attachment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			att, err := rt.Service.UploadAttachment(cmd.Context(), args[0], args[1], comment)
			if err != nil {
				return err
			}

			return printAttachmentResult(rt, att, "Uploaded")
		},
	}

	cmd.Flags().StringVarP(&comment, "comment", "c", "", "Comment for the attachment version")

	return cmd
}

func newDownloadCmd() *cobra.Command {
	var destDir string

	cmd := &cobra.Command{
		Use:   "download <page-id> <attachment-id>",
		Short: "Download an attachment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			attachments, err := rt.Service.ListAttachments(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var target *confluence.Attachment
			for i := range attachments {
				if attachments[i].ID == args[1] {
					target = &attachments[i]
					break
				}
			}
			if target == nil {
				return fmt.Errorf("attachment %s not found on page %s", args[1], args[0])
			}

			path, err := rt.Service.DownloadAttachment(cmd.Context(), *target, destDir)
			if err != nil {
				return err
			}

			if done, err := rt.JSONOutput(map[string]string{"id": target.ID, "path": path}); done {
				return err
			}

			fmt.Fprintf(rt.Out, "  %s Saved %s to %s\n",
				cliui.SuccessMark,
				cliui.NameStyle.Render(target.Title),
				cliui.ValueStyle.Render(path),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&destDir, "dir", ".", "Directory to save the attachment into")

	return cmd
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <page-id> <attachment-id> <file>",
		Short: "Upload a new version of an attachment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.NewRuntime(cmd)
			if err != nil {
				return err
			}

			att, err := rt.Service.UpdateAttachment(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}

			return printAttachmentResult(rt, att, "Updated")
		},
	}
}

func printAttachmentResult(rt *cmdutil.Runtime, att confluence.Attachment, verb string) error {
	if done, err := rt.JSONOutput(att); done {
		return err
	}

	fmt.Fprintf(rt.Out, "  %s %s %s %s\n",
		cliui.SuccessMark,
		verb,
		cliui.NameStyle.Render(att.Title),
		cliui.DimStyle.Render("(id "+att.ID+")"),
	)
	return nil
}
