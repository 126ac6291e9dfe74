package client

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"starclip/domain/request"
)

// ListRequests fetches the creator's requests, optionally narrowed to one
// status server-side. An empty status returns everything.
func (c *Client) ListRequests(ctx context.Context, status request.Status) ([]request.Request, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status.String())
	}

	var out []request.Request
	if err := c.do(ctx, http.MethodGet, "/dashboard/requests", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PatchRequestStatus asks the server to move one request to the given status.
// The caller applies the returned patch only after this succeeds; nothing is
// changed optimistically.
func (c *Client) PatchRequestStatus(ctx context.Context, id string, status request.Status) (request.StatusPatch, error) {
	body := struct {
		Status request.Status `json:"status"`
	}{Status: status}

	var out request.StatusPatch
	if err := c.do(ctx, http.MethodPatch, "/dashboard/requests/"+id, nil, body, &out); err != nil {
		return request.StatusPatch{}, err
	}
	return out, nil
}

// UploadRequestVideo streams the fulfillment video as multipart form data.
// onProgress, if non-nil, receives monotonically non-decreasing integers
// 0-100 as the file content is consumed by the transport.
func (c *Client) UploadRequestVideo(ctx context.Context, id string, file request.VideoFile, content io.Reader, onProgress func(int)) (request.UploadResult, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	req, err := c.newRequest(ctx, http.MethodPost, "/dashboard/requests/"+id+"/video", nil, pr)
	if err != nil {
		return request.UploadResult{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	tracked := &progressReader{r: content, total: file.Size(), onProgress: onProgress}

	// The writer starts only for a request that will actually be sent; every
	// later error path must close the pipe so it cannot block forever.
	go func() {
		part, err := form.CreateFormFile("video", file.Name())
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, tracked); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	resp, err := c.send(req)
	if err != nil {
		pr.CloseWithError(err)
		return request.UploadResult{}, err
	}
	defer resp.Body.Close()

	var out request.UploadResult
	if err := c.decode(resp, &out); err != nil {
		return request.UploadResult{}, err
	}
	tracked.finish()
	return out, nil
}

// progressReader reports whole-percent progress while the wrapped reader is
// drained. Reports never decrease and 100 is emitted exactly once.
type progressReader struct {
	r          io.Reader
	total      int64
	read       int64
	last       int
	onProgress func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.report(p.percent())
	}
	return n, err
}

func (p *progressReader) percent() int {
	if p.total <= 0 {
		return 0
	}
	pct := int(p.read * 100 / p.total)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// finish emits the terminal 100 once the server has acknowledged the upload,
// covering short files whose final Read never crossed the boundary.
func (p *progressReader) finish() {
	p.report(100)
}

func (p *progressReader) report(pct int) {
	if p.onProgress == nil || pct <= p.last {
		return
	}
	p.last = pct
	p.onProgress(pct)
}
