package commands_test

import (
	"bytes"
	"io"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/upp/cmd/upp/commands"
)

func run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

var _ = Describe("upp", func() {
	Context("mul", func() {
		It("should print the product of integer polynomials", func() {
			out, err := run("mul", "--a", "1,2,3,9,8,0,8,3", "--b", "3,2,5,7,1")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("classical = 3x^11"))
			Expect(out).To(ContainSubstring("karatsuba = 3x^11"))
		})

		It("should multiply over every ring", func() {
			for _, ring := range []string{"int", "frac", "secp256k1", "ed25519"} {
				out, err := run("mul", "--ring", ring, "--a", "1,1", "--b=-1,1")
				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(ContainSubstring("karatsuba = x^2"))
			}
		})

		It("should accept fractional coefficients", func() {
			out, err := run("mul", "--ring", "frac", "--a", "1/2", "--b", "2/3,4")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("karatsuba = 2x + 1/3"))
		})

		It("should honour the karatsuba options", func() {
			_, err := run("mul", "--threshold", "1", "--parallel", "2", "--a", "1,2,3,4,5", "--b", "5,4,3,2,1")
			Expect(err).ToNot(HaveOccurred())
		})

		It("should reject bad input", func() {
			_, err := run("mul", "--ring", "quaternion", "--a", "1", "--b", "1")
			Expect(err).To(HaveOccurred())
			_, err = run("mul", "--a", "1,x", "--b", "1")
			Expect(err).To(HaveOccurred())
			_, err = run("mul", "--a", "1")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("bench", func() {
		It("should time both algorithms", func() {
			out, err := run("bench", "--degree", "31", "--trials", "2", "--seed", "1")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("classical:"))
			Expect(out).To(ContainSubstring("karatsuba:"))
		})

		It("should stop when the timeout expires", func() {
			_, err := run("bench", "--degree", "255", "--trials", "1", "--timeout", "1ns")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("deadline exceeded"))
		})

		It("should reject a non-positive number of trials", func() {
			_, err := run("bench", "--trials", "0")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("frac", func() {
		It("should evaluate fraction expressions", func() {
			cases := []struct {
				args     []string
				expected string
			}{
				{[]string{"1/2", "+", "1/3"}, "5/6\n"},
				{[]string{"1/2", "-", "1/3"}, "1/6\n"},
				{[]string{"2/3", "*", "3/4"}, "1/2\n"},
				{[]string{"--", "1/2", "/", "-1/4"}, "-2/1\n"},
				{[]string{"--", "-3/4", "*", "-1/3"}, "1/4\n"},
				{[]string{"3/4", "pow", "2"}, "9/16\n"},
				{[]string{"--", "3/4", "pow", "-2"}, "16/9\n"},
			}
			for _, c := range cases {
				out, err := run(append([]string{"frac"}, c.args...)...)
				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(Equal(c.expected))
			}
		})

		It("should still parse flags", func() {
			out, err := run("frac", "--help")
			Expect(err).ToNot(HaveOccurred())
			Expect(out).To(ContainSubstring("must follow --"))

			_, err = run("frac", "1/2", "+", "1/3", "--threshold", "8")
			Expect(err).ToNot(HaveOccurred())
		})

		It("should report division by zero", func() {
			_, err := run("frac", "1/2", "/", "0")
			Expect(err).To(HaveOccurred())
			_, err = run("frac", "1/0", "+", "1")
			Expect(err).To(HaveOccurred())
		})
	})
})
