package aur_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/aurcheck/internal/aur"
	internalconfig "github.com/smykla-skalski/aurcheck/internal/config"
)

var _ = Describe("New", func() {
	It("returns the RPC client on Linux", func() {
		Expect(aur.New(internalconfig.DefaultConfig())).To(BeAssignableToTypeOf(&aur.Client{}))
	})
})
