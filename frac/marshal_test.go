package frac_test

import (
	"errors"
	"reflect"

	"github.com/renproject/surge"
	"github.com/renproject/surge/surgeutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/upp/frac"
)

var _ = Describe("Surge marshalling", func() {
	trials := 100
	t := reflect.TypeOf(Frac{})

	It("should be the same after marshalling and unmarshalling", func() {
		for i := 0; i < trials; i++ {
			Expect(surgeutil.MarshalUnmarshalCheck(t)).To(Succeed())
		}
	})

	It("should not panic when fuzzing", func() {
		for i := 0; i < trials; i++ {
			Expect(func() { surgeutil.Fuzz(t) }).ToNot(Panic())
		}
	})

	It("should return an error when the buffer is too small", func() {
		for i := 0; i < trials; i++ {
			Expect(surgeutil.MarshalBufTooSmall(t)).To(Succeed())
			Expect(surgeutil.UnmarshalBufTooSmall(t)).To(Succeed())
		}
	})

	It("should reject a zero denominator", func() {
		buf := make([]byte, SizeHintFraction)
		rest, _, err := surge.MarshalI64(3, buf, SizeHintFraction)
		Expect(err).ToNot(HaveOccurred())
		_, _, err = surge.MarshalI64(0, rest, SizeHintFraction)
		Expect(err).ToNot(HaveOccurred())

		var f Frac
		_, _, err = f.Unmarshal(buf, SizeHintFraction)
		Expect(errors.Is(err, ErrDivisionByZero)).To(BeTrue())
	})

	It("should reject values that overflow the integer type", func() {
		buf, err := surge.ToBinary(FromInt[int64](1000))
		Expect(err).ToNot(HaveOccurred())

		var f Fraction[int8]
		_, _, err = f.Unmarshal(buf, SizeHintFraction)
		Expect(err).To(HaveOccurred())
	})
})
