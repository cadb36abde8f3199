package confluence

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/grandcamel/confluence-assistant-skills/pkg/client"
)

// ListAttachments returns the attachments on a page.
func (s *Service) ListAttachments(ctx context.Context, pageID string) ([]Attachment, error) {
	if err := ValidateID(pageID); err != nil {
		return nil, err
	}

	var attachments []Attachment
	for doc, err := range s.api.Paginate(ctx, "/rest/api/content/"+pageID+"/child/attachment", nil, client.PaginateOptions{}) {
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, attachmentFromDoc(doc))
	}

	return attachments, nil
}

// UploadAttachment attaches a local file to a page. The endpoint creates a
// new attachment or a new version when one with the same filename exists.
func (s *Service) UploadAttachment(ctx context.Context, pageID, filePath, comment string) (Attachment, error) {
	if err := ValidateID(pageID); err != nil {
		return Attachment{}, err
	}

	fields := map[string]string{"minorEdit": "true"}
	if comment != "" {
		fields["comment"] = comment
	}

	doc, err := s.api.UploadFile(ctx, "/rest/api/content/"+pageID+"/child/attachment", filePath, fields)
	if err != nil {
		return Attachment{}, err
	}

	att, err := firstAttachment(doc)
	if err != nil {
		return Attachment{}, err
	}

	s.log.Debug("uploaded attachment", "page", pageID, "attachment", att.ID)
	return att, nil
}

// UpdateAttachment replaces the binary data of an existing attachment via
// the per-attachment data endpoint. Servers that don't expose that endpoint
// answer 404 or 405; only then does it fall back to a plain upload, which
// creates a new version. Other failures propagate unchanged.
func (s *Service) UpdateAttachment(ctx context.Context, pageID, attachmentID, filePath string) (Attachment, error) {
	if err := ValidateID(pageID); err != nil {
		return Attachment{}, err
	}
	if err := ValidateID(attachmentID); err != nil {
		return Attachment{}, err
	}

	dataPath := fmt.Sprintf("/rest/api/content/%s/child/attachment/%s/data", pageID, attachmentID)
	doc, err := s.api.UploadFile(ctx, dataPath, filePath, nil)
	if err == nil {
		if att, convErr := firstAttachment(doc); convErr == nil {
			return att, nil
		}
		// Single-object response rather than a results list.
		return attachmentFromDoc(doc), nil
	}

	if !endpointMissing(err) {
		return Attachment{}, err
	}

	s.log.Debug("data endpoint unavailable, re-uploading", "attachment", attachmentID)
	return s.UploadAttachment(ctx, pageID, filePath, "updated via fallback upload")
}

// DownloadAttachment streams an attachment's content into destDir, naming
// the file after the attachment title.
func (s *Service) DownloadAttachment(ctx context.Context, att Attachment, destDir string) (string, error) {
	if att.DownloadLink == "" {
		return "", fmt.Errorf("%w: attachment %s has no download link", client.ErrValidation, att.ID)
	}

	name := att.Title
	if name == "" {
		name = att.ID
	}

	return s.api.DownloadFile(ctx, att.DownloadLink, filepath.Join(destDir, name))
}

// endpointMissing reports whether err indicates the endpoint itself is
// absent on this server (404) or the method unsupported (405).
func endpointMissing(err error) bool {
	if errors.Is(err, client.ErrNotFound) {
		return true
	}
	var statusErr *client.StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 405
}

func firstAttachment(doc client.Document) (Attachment, error) {
	results, _ := doc["results"].([]any)
	if len(results) == 0 {
		return Attachment{}, fmt.Errorf("%w: empty attachment response", client.ErrAPI)
	}
	first, ok := results[0].(map[string]any)
	if !ok {
		return Attachment{}, fmt.Errorf("%w: unexpected attachment payload", client.ErrAPI)
	}
	return attachmentFromDoc(first), nil
}
