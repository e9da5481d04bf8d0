package helpers_test

import (
	"code.cloudfoundry.org/service-instance-manager/store/helpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("QuestionMarks", func() {
	It("builds a placeholder list", func() {
		Expect(helpers.QuestionMarks(0)).To(Equal(""))
		Expect(helpers.QuestionMarks(1)).To(Equal("?"))
		Expect(helpers.QuestionMarks(3)).To(Equal("?, ?, ?"))
	})
})

var _ = Describe("RebindForSQLDialect", func() {
	It("leaves mysql queries untouched", func() {
		Expect(helpers.RebindForSQLDialect("SELECT * FROM t WHERE a = ? AND b = ?", "mysql")).
			To(Equal("SELECT * FROM t WHERE a = ? AND b = ?"))
	})

	It("numbers the placeholders for postgres", func() {
		Expect(helpers.RebindForSQLDialect("SELECT * FROM t WHERE a = ? AND b = ?", "postgres")).
			To(Equal("SELECT * FROM t WHERE a = $1 AND b = $2"))
	})

	It("panics on an unrecognized dialect", func() {
		Expect(func() {
			helpers.RebindForSQLDialect("SELECT 1", "oracle")
		}).To(Panic())
	})
})
