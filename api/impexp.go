package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/etnz/networth"
)

func exportPath(kind networth.Kind, format networth.FileFormat) string {
	return fmt.Sprintf("/export/%s/%s", kind, format)
}

// ExportURL returns the download address of an export. A browser would
// simply navigate to it.
func (c *Client) ExportURL(kind networth.Kind, format networth.FileFormat) string {
	return c.URL(exportPath(kind, format))
}

// Export streams an export into w. It returns the file name proposed by the
// service, if any. Nothing is written to w when the service refuses the export.
func (c *Client) Export(ctx context.Context, kind networth.Kind, format networth.FileFormat, w io.Writer) (string, error) {
	if kind == networth.KindAll && format != networth.FormatJSON {
		return "", &Error{Message: fmt.Sprintf("export of %s is only available in %s", kind, networth.FormatJSON)}
	}
	resp, err := c.open(ctx, request{
		path:   exportPath(kind, format),
		header: http.Header{"Accept": {format.ContentType()}},
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", newError(resp.StatusCode, "cannot download the export", err)
	}
	return attachmentName(resp.Header.Get("Content-Disposition")), nil
}

// attachmentName returns the filename parameter of a Content-Disposition header.
func attachmentName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

// Import uploads the raw content of a file in format. Only assets and debts
// can be imported.
func (c *Client) Import(ctx context.Context, kind networth.Kind, format networth.FileFormat, body io.Reader) (networth.ImportResult, error) {
	var result networth.ImportResult
	if kind != networth.KindAssets && kind != networth.KindDebts {
		return result, &Error{Message: fmt.Sprintf("cannot import %s", kind)}
	}
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/import/%s/%s", kind, format),
		body:   body,
		header: http.Header{"Content-Type": {format.ContentType()}},
	}, &result)
	return result, err
}
