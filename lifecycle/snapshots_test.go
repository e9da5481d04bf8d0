package lifecycle_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/service-instance-manager/credentials"
	"code.cloudfoundry.org/service-instance-manager/gateway"
	gatewayfakes "code.cloudfoundry.org/service-instance-manager/gateway/fakes"
	"code.cloudfoundry.org/service-instance-manager/lifecycle"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("snapshot and serialization operations", func() {
	var (
		coordinator  *lifecycle.ProvisioningCoordinator
		factory      *gatewayfakes.ClientFactory
		client       *gatewayfakes.Client
		uploadClient *gatewayfakes.UploadClient
		instance     store.ServiceInstance
		plan         store.ServicePlan
		job          gateway.Job
	)

	BeforeEach(func() {
		factory = &gatewayfakes.ClientFactory{}
		client = &gatewayfakes.Client{}
		uploadClient = &gatewayfakes.UploadClient{}
		factory.ResolveReturns(client, true)
		factory.ResolveUploadReturns(uploadClient, true)

		coordinator = lifecycle.NewProvisioningCoordinator(factory, credentials.NewCodec(), lagertest.NewTestLogger("test"))

		instance = store.ServiceInstance{GUID: "instance-guid", GatewayName: "svc-123"}
		plan = store.ServicePlan{
			GUID:    "plan-guid",
			Service: store.Service{Label: "mysql", AuthToken: "secret"},
		}
		job = gateway.Job{JobID: "job-1", Status: "queued"}
	})

	Describe("CreateSnapshot", func() {
		BeforeEach(func() {
			client.CreateSnapshotReturns(job, nil)
		})

		It("forwards to the gateway keyed by the stored gateway name", func() {
			returnedJob, err := coordinator.CreateSnapshot(instance, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(returnedJob).To(Equal(job))

			Expect(client.CreateSnapshotCallCount()).To(Equal(1))
			Expect(client.CreateSnapshotArgsForCall(0)).To(Equal("svc-123"))
		})

		Context("when the gateway is unavailable", func() {
			BeforeEach(func() {
				factory.ResolveReturns(nil, false)
			})

			It("returns an UnavailableError the caller sees", func() {
				_, err := coordinator.CreateSnapshot(instance, plan)
				Expect(err).To(Equal(lifecycle.UnavailableError{Label: "mysql"}))
				Expect(err).To(MatchError("service gateway for mysql is not available"))
			})
		})
	})

	Describe("EnumSnapshots", func() {
		BeforeEach(func() {
			client.EnumSnapshotsReturns([]gateway.Snapshot{{SnapshotID: "snap-1"}}, nil)
		})

		It("forwards to the gateway", func() {
			snapshots, err := coordinator.EnumSnapshots(instance, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshots).To(HaveLen(1))
			Expect(client.EnumSnapshotsArgsForCall(0)).To(Equal("svc-123"))
		})
	})

	Describe("SnapshotDetails", func() {
		It("forwards the snapshot id", func() {
			_, err := coordinator.SnapshotDetails(instance, plan, "snap-1")
			Expect(err).NotTo(HaveOccurred())

			serviceID, snapshotID := client.SnapshotDetailsArgsForCall(0)
			Expect(serviceID).To(Equal("svc-123"))
			Expect(snapshotID).To(Equal("snap-1"))
		})
	})

	Describe("RollbackSnapshot", func() {
		It("forwards the snapshot id", func() {
			_, err := coordinator.RollbackSnapshot(instance, plan, "snap-1")
			Expect(err).NotTo(HaveOccurred())

			serviceID, snapshotID := client.RollbackSnapshotArgsForCall(0)
			Expect(serviceID).To(Equal("svc-123"))
			Expect(snapshotID).To(Equal("snap-1"))
		})
	})

	Describe("DeleteSnapshot", func() {
		It("forwards the snapshot id", func() {
			_, err := coordinator.DeleteSnapshot(instance, plan, "snap-1")
			Expect(err).NotTo(HaveOccurred())

			serviceID, snapshotID := client.DeleteSnapshotArgsForCall(0)
			Expect(serviceID).To(Equal("svc-123"))
			Expect(snapshotID).To(Equal("snap-1"))
		})
	})

	Describe("SerializedURL", func() {
		BeforeEach(func() {
			client.SerializedURLReturns(gateway.SerializedURL{URL: "https://example.com/dump"}, nil)
		})

		It("forwards to the gateway", func() {
			serialized, err := coordinator.SerializedURL(instance, plan, "snap-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(serialized.URL).To(Equal("https://example.com/dump"))
		})
	})

	Describe("CreateSerializedURL", func() {
		It("forwards to the gateway", func() {
			_, err := coordinator.CreateSerializedURL(instance, plan, "snap-1")
			Expect(err).NotTo(HaveOccurred())

			serviceID, snapshotID := client.CreateSerializedURLArgsForCall(0)
			Expect(serviceID).To(Equal("svc-123"))
			Expect(snapshotID).To(Equal("snap-1"))
		})
	})

	Describe("ImportFromURL", func() {
		It("forwards the source url", func() {
			_, err := coordinator.ImportFromURL(instance, plan, "https://example.com/dump")
			Expect(err).NotTo(HaveOccurred())

			serviceID, request := client.ImportFromURLArgsForCall(0)
			Expect(serviceID).To(Equal("svc-123"))
			Expect(request).To(Equal(gateway.ImportFromURLRequest{URL: "https://example.com/dump"}))
		})
	})

	Describe("ImportFromData", func() {
		BeforeEach(func() {
			uploadClient.ImportFromDataReturns(job, nil)
		})

		It("uploads through the serialization endpoint", func() {
			returnedJob, err := coordinator.ImportFromData(instance, plan, "/tmp/dump.tgz")
			Expect(err).NotTo(HaveOccurred())
			Expect(returnedJob).To(Equal(job))

			label, serviceID, filePath := uploadClient.ImportFromDataArgsForCall(0)
			Expect(label).To(Equal("mysql"))
			Expect(serviceID).To(Equal("svc-123"))
			Expect(filePath).To(Equal("/tmp/dump.tgz"))
		})

		Context("when the upload endpoint is not configured", func() {
			BeforeEach(func() {
				factory.ResolveUploadReturns(nil, false)
			})

			It("returns an UnavailableError", func() {
				_, err := coordinator.ImportFromData(instance, plan, "/tmp/dump.tgz")
				Expect(err).To(Equal(lifecycle.UnavailableError{Label: "mysql"}))
			})
		})
	})

	Describe("JobInfo", func() {
		It("forwards the job id", func() {
			_, err := coordinator.JobInfo(instance, plan, "job-1")
			Expect(err).NotTo(HaveOccurred())

			serviceID, jobID := client.JobInfoArgsForCall(0)
			Expect(serviceID).To(Equal("svc-123"))
			Expect(jobID).To(Equal("job-1"))
		})
	})

	Describe("gateway errors", func() {
		BeforeEach(func() {
			client.CreateSnapshotReturns(gateway.Job{}, errors.New("gateway down"))
		})

		It("pass straight back to the caller", func() {
			_, err := coordinator.CreateSnapshot(instance, plan)
			Expect(err).To(MatchError("gateway down"))
		})
	})
})
