package store_test

import (
	"errors"

	dbfakes "code.cloudfoundry.org/cf-networking-helpers/db/fakes"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeScanner struct {
	scanErr error
	id      int64
}

func (s *fakeScanner) Scan(dest ...interface{}) error {
	if s.scanErr != nil {
		return s.scanErr
	}
	if idPtr, ok := dest[0].(*int64); ok {
		*idPtr = s.id
	}
	return nil
}

type fakeResult struct {
	rowsAffected int64
	rowsErr      error
}

func (r *fakeResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (r *fakeResult) RowsAffected() (int64, error) {
	return r.rowsAffected, r.rowsErr
}

var _ = Describe("InstanceTable", func() {
	var (
		table    *store.InstanceTable
		tx       *dbfakes.Transaction
		instance store.ServiceInstance
	)

	BeforeEach(func() {
		table = &store.InstanceTable{}
		tx = &dbfakes.Transaction{}
		tx.RebindStub = func(query string) string {
			return query
		}
		tx.QueryRowReturns(&fakeScanner{id: 42})

		instance = store.ServiceInstance{
			GUID:        "instance-guid",
			Name:        "my-instance",
			SpaceGUID:   "space-guid",
			PlanGUID:    "plan-guid",
			GatewayName: "svc-123",
			GatewayData: `{"x":1}`,
			Credentials: `{"user":"a"}`,
		}
	})

	Describe("Create", func() {
		It("inserts the row and reads back the generated id", func() {
			id, err := table.Create(tx, instance)
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(int64(42)))

			Expect(tx.ExecCallCount()).To(Equal(1))
			query, args := tx.ExecArgsForCall(0)
			Expect(query).To(ContainSubstring("INSERT INTO service_instances"))
			Expect(args).To(Equal([]interface{}{
				"instance-guid",
				"my-instance",
				"space-guid",
				"plan-guid",
				"svc-123",
				`{"x":1}`,
				`{"user":"a"}`,
			}))

			Expect(tx.QueryRowCallCount()).To(Equal(1))
			query, args = tx.QueryRowArgsForCall(0)
			Expect(query).To(ContainSubstring("SELECT id FROM service_instances"))
			Expect(args).To(Equal([]interface{}{"instance-guid"}))
		})

		Context("when MySQL reports a duplicate key", func() {
			BeforeEach(func() {
				tx.ExecReturns(nil, errors.New("Error 1062: Duplicate entry"))
			})

			It("returns a DuplicateNameError", func() {
				_, err := table.Create(tx, instance)
				Expect(err).To(Equal(store.DuplicateNameError{SpaceGUID: "space-guid", Name: "my-instance"}))
			})
		})

		Context("when Postgres reports a unique violation", func() {
			BeforeEach(func() {
				tx.ExecReturns(nil, errors.New(`pq: duplicate key value violates unique constraint (SQLSTATE 23505)`))
			})

			It("returns a DuplicateNameError", func() {
				_, err := table.Create(tx, instance)
				Expect(err).To(Equal(store.DuplicateNameError{SpaceGUID: "space-guid", Name: "my-instance"}))
			})
		})

		Context("when the insert fails for another reason", func() {
			BeforeEach(func() {
				tx.ExecReturns(nil, errors.New("disk on fire"))
			})

			It("returns a wrapped error", func() {
				_, err := table.Create(tx, instance)
				Expect(err).To(MatchError("inserting service instance: disk on fire"))
			})
		})

		Context("when the id read-back fails", func() {
			BeforeEach(func() {
				tx.QueryRowReturns(&fakeScanner{scanErr: errors.New("gone")})
			})

			It("returns a wrapped error", func() {
				_, err := table.Create(tx, instance)
				Expect(err).To(MatchError("reading back service instance id: gone"))
			})
		})
	})

	Describe("Update", func() {
		BeforeEach(func() {
			tx.ExecReturns(&fakeResult{rowsAffected: 1}, nil)
		})

		It("rewrites the mutable columns keyed by guid", func() {
			Expect(table.Update(tx, instance)).To(Succeed())

			Expect(tx.ExecCallCount()).To(Equal(1))
			query, args := tx.ExecArgsForCall(0)
			Expect(query).To(ContainSubstring("UPDATE service_instances"))
			Expect(args).To(Equal([]interface{}{
				"my-instance",
				"svc-123",
				`{"x":1}`,
				`{"user":"a"}`,
				"instance-guid",
			}))
		})

		Context("when the rename collides with an existing name", func() {
			BeforeEach(func() {
				tx.ExecReturns(nil, errors.New("Error 1062: Duplicate entry"))
			})

			It("returns a DuplicateNameError", func() {
				err := table.Update(tx, instance)
				Expect(err).To(Equal(store.DuplicateNameError{SpaceGUID: "space-guid", Name: "my-instance"}))
			})
		})

		Context("when no row matches the guid", func() {
			BeforeEach(func() {
				tx.ExecReturns(&fakeResult{rowsAffected: 0}, nil)
			})

			It("returns an InstanceNotFoundError", func() {
				err := table.Update(tx, instance)
				Expect(err).To(Equal(store.InstanceNotFoundError{GUID: "instance-guid"}))
			})
		})

		Context("when the update fails for another reason", func() {
			BeforeEach(func() {
				tx.ExecReturns(nil, errors.New("disk on fire"))
			})

			It("returns a wrapped error", func() {
				err := table.Update(tx, instance)
				Expect(err).To(MatchError("updating service instance: disk on fire"))
			})
		})
	})

	Describe("Delete", func() {
		It("removes the bindings before the instance", func() {
			Expect(table.Delete(tx, "instance-guid")).To(Succeed())

			Expect(tx.ExecCallCount()).To(Equal(2))
			query, args := tx.ExecArgsForCall(0)
			Expect(query).To(ContainSubstring("DELETE FROM service_bindings"))
			Expect(args).To(Equal([]interface{}{"instance-guid"}))

			query, args = tx.ExecArgsForCall(1)
			Expect(query).To(ContainSubstring("DELETE FROM service_instances"))
			Expect(args).To(Equal([]interface{}{"instance-guid"}))
		})

		Context("when deleting the bindings fails", func() {
			BeforeEach(func() {
				tx.ExecReturnsOnCall(0, nil, errors.New("banana"))
			})

			It("returns a wrapped error before touching the instance", func() {
				err := table.Delete(tx, "instance-guid")
				Expect(err).To(MatchError("deleting service bindings: banana"))
				Expect(tx.ExecCallCount()).To(Equal(1))
			})
		})

		Context("when deleting the instance fails", func() {
			BeforeEach(func() {
				tx.ExecReturnsOnCall(1, nil, errors.New("banana"))
			})

			It("returns a wrapped error", func() {
				err := table.Delete(tx, "instance-guid")
				Expect(err).To(MatchError("deleting service instance: banana"))
			})
		})
	})
})

var _ = Describe("DuplicateNameError", func() {
	It("names the space and the taken name", func() {
		err := store.DuplicateNameError{SpaceGUID: "space-guid", Name: "my-instance"}
		Expect(err.Error()).To(Equal("service instance name 'my-instance' is taken in space space-guid"))
	})
})
