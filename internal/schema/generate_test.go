package schema_test

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/aurcheck/internal/schema"
)

func generate(target schema.Target) map[string]any {
	data, err := schema.GenerateJSON(target, true)
	Expect(err).NotTo(HaveOccurred())

	var s map[string]any
	Expect(json.Unmarshal(data, &s)).To(Succeed())

	return s
}

func properties(s map[string]any) map[string]any {
	props, ok := s["properties"].(map[string]any)
	Expect(ok).To(BeTrue(), "properties should exist")

	return props
}

var _ = Describe("Generate", func() {
	Describe("result schema", func() {
		var s map[string]any

		BeforeEach(func() {
			s = generate(schema.TargetResult)
		})

		It("sets the $schema URI and title", func() {
			Expect(s["$schema"]).To(Equal("https://json-schema.org/draft/2020-12/schema"))
			Expect(s["title"]).To(Equal("aurcheck update result"))
		})

		It("lists every field as required", func() {
			Expect(s["required"]).To(ConsistOf(
				"has_update", "latest_version", "current_version", "download_url",
				"release_notes", "published_at", "source", "sha256",
			))
		})

		It("types the version fields as strings", func() {
			props := properties(s)

			Expect(props["has_update"]).To(HaveKeyWithValue("type", "boolean"))
			Expect(props["latest_version"]).To(HaveKeyWithValue("type", "string"))
			Expect(props["current_version"]).To(HaveKeyWithValue("type", "string"))
		})

		It("allows null for optional fields", func() {
			props := properties(s)

			for _, key := range []string{"download_url", "release_notes", "published_at", "source", "sha256"} {
				prop, ok := props[key].(map[string]any)
				Expect(ok).To(BeTrue(), key)
				Expect(prop).To(HaveKey("oneOf"), key)
				Expect(prop["oneOf"]).To(ContainElement(HaveKeyWithValue("type", "null")), key)
			}
		})
	})

	Describe("config schema", func() {
		var s map[string]any

		BeforeEach(func() {
			s = generate(schema.TargetConfig)
		})

		It("sets the title", func() {
			Expect(s["title"]).To(Equal("aurcheck configuration"))
		})

		It("includes the top-level sections", func() {
			Expect(properties(s)).To(HaveKey("aur"))
			Expect(properties(s)).To(HaveKey("platform"))
			Expect(properties(s)).To(HaveKey("log"))
		})

		It("requires no keys", func() {
			Expect(s).NotTo(HaveKey("required"))
		})

		It("defines Duration as string with pattern", func() {
			defs, ok := s["$defs"].(map[string]any)
			Expect(ok).To(BeTrue(), "$defs should exist")

			dur, ok := defs["Duration"].(map[string]any)
			Expect(ok).To(BeTrue(), "Duration def should exist")
			Expect(dur["type"]).To(Equal("string"))
			Expect(dur["pattern"]).NotTo(BeEmpty())
		})
	})

	It("rejects unknown targets", func() {
		_, err := schema.Generate("nope")
		Expect(errors.Is(err, schema.ErrUnknownTarget)).To(BeTrue())
	})

	It("covers every target", func() {
		for _, target := range schema.Targets() {
			_, err := schema.Generate(target)
			Expect(err).NotTo(HaveOccurred(), string(target))
		}
	})

	Describe("GenerateJSON", func() {
		It("produces compact JSON when indent is false", func() {
			data, err := schema.GenerateJSON(schema.TargetResult, false)
			Expect(err).NotTo(HaveOccurred())

			// Compact JSON is a single line plus trailing newline
			Expect(bytes.Count(data, []byte("\n"))).To(Equal(1))
		})

		It("produces indented JSON when indent is true", func() {
			data, err := schema.GenerateJSON(schema.TargetResult, true)
			Expect(err).NotTo(HaveOccurred())

			Expect(bytes.Count(data, []byte("\n"))).To(BeNumerically(">", 10))
		})
	})
})
