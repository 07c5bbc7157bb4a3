package platform_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/aurcheck/internal/platform"
)

var _ = Describe("MatchesArchFamily", func() {
	DescribeTable("matches os-release content",
		func(content string, expected bool) {
			Expect(platform.MatchesArchFamily(content)).To(Equal(expected))
		},
		Entry("arch", "NAME=\"Arch Linux\"\nID=arch\n", true),
		Entry("archlinux spelling", "ID=archlinux\n", true),
		Entry("derivative", "NAME=\"EndeavourOS\"\nID=endeavouros\nID_LIKE=arch\n", true),
		Entry("manjaro", "ID=manjaro\nID_LIKE=arch\n", true),
		Entry("debian", "ID=debian\n", false),
		Entry("ubuntu", "ID=ubuntu\nID_LIKE=debian\n", false),
		Entry("fedora", "ID=fedora\n", false),
		Entry("empty", "", false),
	)
})

var _ = Describe("DefaultHelpers", func() {
	It("lists helpers in priority order", func() {
		Expect(platform.DefaultHelpers()).To(Equal([]string{"yay", "paru", "pamac", "trizen", "pacaur"}))
	})
})
