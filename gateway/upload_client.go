package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
)

//counterfeiter:generate -o fakes/upload_client.go --fake-name UploadClient . UploadClient
type UploadClient interface {
	ImportFromData(serviceLabel, serviceID, filePath string) (Job, error)
}

//counterfeiter:generate -o fakes/http_client.go --fake-name HTTPClient . httpClient
type httpClient interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPUploadClient streams a serialized service dump to the upload endpoint.
// Unlike the gateway client it carries a file body, so it works on a raw
// http client rather than the json client.
type HTTPUploadClient struct {
	BaseURL    string
	Token      string
	HTTPClient httpClient
	Logger     lager.Logger
}

func (c *HTTPUploadClient) ImportFromData(serviceLabel, serviceID, filePath string) (Job, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return Job{}, fmt.Errorf("open upload file: %s", err)
	}
	defer file.Close()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("data_file", filepath.Base(filePath))
	if err != nil {
		return Job{}, fmt.Errorf("create form file: %s", err)
	}
	_, err = io.Copy(part, file)
	if err != nil {
		return Job{}, fmt.Errorf("copy upload file: %s", err)
	}
	err = writer.Close()
	if err != nil {
		return Job{}, fmt.Errorf("close multipart writer: %s", err)
	}

	reqURL := fmt.Sprintf("%s/serialized/data/%s/%s", c.BaseURL, serviceLabel, serviceID)
	request, err := http.NewRequest("PUT", reqURL, body)
	if err != nil {
		return Job{}, fmt.Errorf("http new request: %s", err)
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("X-VCAP-SDS-Upload-Token", c.Token)

	c.Logger.Debug("import-from-data", lager.Data{"url": reqURL, "service_id": serviceID})

	resp, err := c.HTTPClient.Do(request)
	if err != nil {
		return Job{}, fmt.Errorf("http client do: %s", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Job{}, fmt.Errorf("body read: %s", err)
	}

	if resp.StatusCode > 299 {
		return Job{}, fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(respBytes))
	}

	var job Job
	err = json.Unmarshal(respBytes, &job)
	if err != nil {
		return Job{}, fmt.Errorf("json unmarshal: %s", err)
	}
	return job, nil
}
