package gateway_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/service-instance-manager/gateway"
	"code.cloudfoundry.org/service-instance-manager/gateway/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HTTPUploadClient", func() {
	var (
		client     *gateway.HTTPUploadClient
		httpClient *fakes.HTTPClient
		dumpFile   string
	)

	BeforeEach(func() {
		httpClient = &fakes.HTTPClient{}
		httpClient.DoReturns(&http.Response{
			StatusCode: 200,
			Body:       io.NopCloser(bytes.NewBufferString(`{"job_id": "job-1", "status": "queued"}`)),
		}, nil)

		client = &gateway.HTTPUploadClient{
			BaseURL:    "https://upload.example.com",
			Token:      "upload-token",
			HTTPClient: httpClient,
			Logger:     lagertest.NewTestLogger("test"),
		}

		tempDir := GinkgoT().TempDir()
		dumpFile = filepath.Join(tempDir, "dump.tgz")
		Expect(os.WriteFile(dumpFile, []byte("serialized service data"), 0600)).To(Succeed())
	})

	It("PUTs the file as multipart form data with the upload token", func() {
		job, err := client.ImportFromData("mysql-5.5", "svc-123", dumpFile)
		Expect(err).NotTo(HaveOccurred())
		Expect(job).To(Equal(gateway.Job{JobID: "job-1", Status: "queued"}))

		Expect(httpClient.DoCallCount()).To(Equal(1))
		request := httpClient.DoArgsForCall(0)
		Expect(request.Method).To(Equal("PUT"))
		Expect(request.URL.String()).To(Equal("https://upload.example.com/serialized/data/mysql-5.5/svc-123"))
		Expect(request.Header.Get("X-VCAP-SDS-Upload-Token")).To(Equal("upload-token"))
		Expect(request.Header.Get("Content-Type")).To(HavePrefix("multipart/form-data; boundary="))

		Expect(request.ParseMultipartForm(1 << 20)).To(Succeed())
		uploaded, header, err := request.FormFile("data_file")
		Expect(err).NotTo(HaveOccurred())
		defer uploaded.Close()
		Expect(header.Filename).To(Equal("dump.tgz"))

		contents, err := io.ReadAll(uploaded)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(contents)).To(Equal("serialized service data"))
	})

	Context("when the file does not exist", func() {
		It("returns a wrapped error without calling the endpoint", func() {
			_, err := client.ImportFromData("mysql-5.5", "svc-123", "/no/such/file")
			Expect(err).To(MatchError(ContainSubstring("open upload file:")))
			Expect(httpClient.DoCallCount()).To(Equal(0))
		})
	})

	Context("when the http request fails", func() {
		BeforeEach(func() {
			httpClient.DoReturns(nil, errors.New("connection refused"))
		})

		It("returns a wrapped error", func() {
			_, err := client.ImportFromData("mysql-5.5", "svc-123", dumpFile)
			Expect(err).To(MatchError("http client do: connection refused"))
		})
	})

	Context("when the endpoint rejects the upload", func() {
		BeforeEach(func() {
			httpClient.DoReturns(&http.Response{
				StatusCode: 403,
				Body:       io.NopCloser(bytes.NewBufferString("bad token")),
			}, nil)
		})

		It("returns the status and body", func() {
			_, err := client.ImportFromData("mysql-5.5", "svc-123", dumpFile)
			Expect(err).To(MatchError("upload failed with status 403: bad token"))
		})
	})

	Context("when the response is not valid JSON", func() {
		BeforeEach(func() {
			httpClient.DoReturns(&http.Response{
				StatusCode: 200,
				Body:       io.NopCloser(bytes.NewBufferString("%%%")),
			}, nil)
		})

		It("returns a wrapped error", func() {
			_, err := client.ImportFromData("mysql-5.5", "svc-123", dumpFile)
			Expect(err).To(MatchError(ContainSubstring("json unmarshal:")))
		})
	})
})
