package docapi

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"

	"github.com/nitinkv/docvault/internal/core/domain"
)

const savePath = "/saveDocumentEntry"

// SaveDocument posts the multipart submission: scalar fields, one
// indexed tags[i][tag_name] entry per tag and one "file" part per
// attachment.
func (c *Client) SaveDocument(ctx context.Context, payload domain.UploadPayload, token string) error {
	envelope, err := c.postMultipart(ctx, savePath, token, func(w *multipart.Writer) error {
		fields := []struct{ name, value string }{
			{"major_head", payload.MajorHead},
			{"minor_head", payload.MinorHead},
			{"document_date", payload.DocumentDate},
			{"document_remarks", payload.Remarks},
			{"user_id", payload.UserID},
		}
		for _, field := range fields {
			if err := w.WriteField(field.name, field.value); err != nil {
				return err
			}
		}

		for i, tag := range payload.Tags {
			if err := w.WriteField(fmt.Sprintf("tags[%d][tag_name]", i), tag.TagName); err != nil {
				return err
			}
		}

		for _, file := range payload.Files {
			part, err := createFilePart(w, file)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, file.Body); err != nil {
				return fmt.Errorf("copy file %s: %w", file.Name, err)
			}
		}
		return nil
	}, "save document")
	if err != nil {
		return err
	}
	if !envelope.Status {
		return rejectionError("save document", envelope)
	}
	return nil
}

func createFilePart(w *multipart.Writer, file domain.UploadPart) (io.Writer, error) {
	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, file.Name))
	header.Set("Content-Type", mimeType)
	return w.CreatePart(header)
}
