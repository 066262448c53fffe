package salary_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tusharpolymers/onboard-portal/internal/salary"
)

func TestSalary(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Salary Suite")
}

var _ = Describe("DefaultStatement", func() {
	It("computes totals from the component figures", func() {
		s := salary.DefaultStatement()

		Expect(s.BaseSalary).To(Equal(int64(50000)))
		Expect(s.HRA).To(Equal(int64(20000)))
		Expect(s.SpecialAllowance).To(Equal(int64(10000)))
		Expect(s.ProvidentFund).To(Equal(int64(-6000)))
		Expect(s.ProfessionalTax).To(Equal(int64(-200)))

		Expect(s.TotalEarnings).To(Equal(int64(80000)))
		Expect(s.TotalDeductions).To(Equal(int64(-6200)))
		Expect(s.NetSalary).To(Equal(int64(73800)))
	})
})
