package config_test

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/service-instance-manager/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Describe("New", func() {
		var (
			configFilePath string
			validConfig    string
		)

		BeforeEach(func() {
			validConfig = `{
				"listen_host": "0.0.0.0",
				"listen_port": 4002,
				"debug_server_host": "127.0.0.1",
				"debug_server_port": 22222,
				"log_prefix": "cfnetworking",
				"log_level": "info",
				"uaa_url": "https://uaa.example.com",
				"uaa_port": 8443,
				"uaa_client": "service-instance-manager",
				"uaa_client_secret": "uaa-secret",
				"cc_url": "https://api.example.com",
				"metron_address": "127.0.0.1:3457",
				"database": {
					"type": "mysql",
					"user": "root",
					"password": "password",
					"host": "127.0.0.1",
					"port": 3306,
					"timeout": 5,
					"database_name": "service_instances"
				},
				"max_idle_connections": 10,
				"max_open_connections": 20,
				"connections_max_lifetime_seconds": 30,
				"upload_url": "https://upload.example.com",
				"upload_token": "upload-token",
				"upload_timeout_seconds": 60,
				"services": [
					{
						"guid": "service-guid",
						"label": "mysql",
						"provider": "core",
						"version": "5.5",
						"url": "https://mysql-gateway.example.com",
						"timeout_seconds": 10,
						"auth_token": "secret",
						"plans": [
							{"guid": "plan-guid", "name": "gold", "free": false}
						]
					}
				]
			}`

			configFilePath = filepath.Join(GinkgoT().TempDir(), "config.json")
			Expect(os.WriteFile(configFilePath, []byte(validConfig), 0600)).To(Succeed())
		})

		It("parses the config file", func() {
			conf, err := config.New(configFilePath)
			Expect(err).NotTo(HaveOccurred())

			Expect(conf.ListenHost).To(Equal("0.0.0.0"))
			Expect(conf.ListenPort).To(Equal(4002))
			Expect(conf.UAAClient).To(Equal("service-instance-manager"))
			Expect(conf.Database.Type).To(Equal("mysql"))
			Expect(conf.MaxOpenConnections).To(Equal(20))
			Expect(conf.UploadTimeoutSeconds).To(Equal(60))

			Expect(conf.Services).To(HaveLen(1))
			Expect(conf.Services[0].Label).To(Equal("mysql"))
			Expect(conf.Services[0].Plans).To(HaveLen(1))
			Expect(conf.Services[0].Plans[0].Free).To(BeFalse())
		})

		Context("when the config file does not exist", func() {
			It("returns a wrapped error", func() {
				_, err := config.New("/no/such/file")
				Expect(err).To(MatchError(ContainSubstring("reading config:")))
			})
		})

		Context("when the config file is not valid JSON", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(configFilePath, []byte("%%%"), 0600)).To(Succeed())
			})

			It("returns a wrapped error", func() {
				_, err := config.New(configFilePath)
				Expect(err).To(MatchError(ContainSubstring("parsing config:")))
			})
		})

		Context("when a required field is missing", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(configFilePath, []byte(`{"listen_port": 4002}`), 0600)).To(Succeed())
			})

			It("reports the invalid config", func() {
				_, err := config.New(configFilePath)
				Expect(err).To(MatchError(ContainSubstring("invalid config:")))
				Expect(err).To(MatchError(ContainSubstring("ListenHost")))
			})
		})
	})
})
