package version_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/aurcheck/internal/version"
)

var _ = Describe("Clean", func() {
	DescribeTable("strips the package revision",
		func(input, expected string) {
			Expect(version.Clean(input)).To(Equal(expected))
		},
		Entry("pkgrel suffix", "1.5.0-2", "1.5.0"),
		Entry("no suffix", "1.5.0", "1.5.0"),
		Entry("splits on first separator only", "1.2.0-1-beta", "1.2.0"),
		Entry("leading separator", "-1", ""),
		Entry("empty", "", ""),
	)
})

var _ = Describe("Compare", func() {
	DescribeTable("orders versions",
		func(a, b string, expected int) {
			Expect(version.Compare(a, b)).To(Equal(expected))
		},
		Entry("equal", "1.2.3", "1.2.3", 0),
		Entry("patch bump", "1.2.3", "1.2.4", -1),
		Entry("minor beats patch", "1.3.0", "1.2.9", 1),
		Entry("numeric not lexicographic", "1.10.0", "1.9.0", 1),
		Entry("missing trailing segments are zero", "1.2", "1.2.0", 0),
		Entry("longer with nonzero tail is newer", "1.2.0.1", "1.2", 1),
		Entry("leading v ignored", "v1.2.0", "1.2.0", 0),
		Entry("uppercase V ignored", "V2.0.0", "1.9.9", 1),
		Entry("leading zeros", "1.02.0", "1.2.0", 0),
		Entry("empty is zero", "", "0", 0),
		Entry("empty older than anything", "", "0.0.1", -1),
		Entry("whitespace trimmed", " 1.2.0\n", "1.2.0", 0),
		Entry("text sorts below numbers", "1.2.rc", "1.2.0", -1),
		Entry("text compared lexicographically", "1.2.alpha", "1.2.beta", -1),
		Entry("build metadata falls back to segments", "1.2.3+git", "1.2.3", -1),
		Entry("huge numbers do not overflow", "1.99999999999999999999999", "1.99999999999999999999998", 1),
		Entry("empty segment is zero", "1..2", "1.0.2", 0),
	)

	It("is antisymmetric", func() {
		pairs := [][2]string{
			{"1.2.3", "1.2.4"},
			{"1.2.rc", "1.2"},
			{"2", "1.9.9.9"},
			{"", "abc"},
		}

		for _, p := range pairs {
			Expect(version.Compare(p[0], p[1])).To(Equal(-version.Compare(p[1], p[0])))
		}
	})

	It("is transitive across mixed formats", func() {
		ordered := []string{"", "0.9", "1.0.alpha", "1.0", "1.0.0.1", "1.2.3", "v1.10", "2.0.0"}

		for i := range ordered {
			for j := i + 1; j < len(ordered); j++ {
				Expect(version.Compare(ordered[i], ordered[j])).
					To(Equal(-1), "%q should sort before %q", ordered[i], ordered[j])
			}
		}
	})
})

var _ = Describe("Newer", func() {
	It("never reports a version as newer than itself", func() {
		for _, v := range []string{"", "1", "1.2.3", "v1.2", "abc", "1.2.rc"} {
			Expect(version.Newer(v, v)).To(BeFalse(), v)
		}
	})

	It("reports strictly greater versions", func() {
		Expect(version.Newer("1.2.0", "1.3.0")).To(BeTrue())
		Expect(version.Newer("1.3.0", "1.2.0")).To(BeFalse())
	})

	It("ignores revisions once cleaned", func() {
		Expect(version.Newer(version.Clean("1.2.0-1"), version.Clean("1.2.0-3"))).To(BeFalse())
		Expect(version.Newer(version.Clean("1.2.0"), version.Clean("1.3.0-1"))).To(BeTrue())
	})
})
