// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy
// of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations
// under the License.

package interpolate

import (
	"errors"

	"github.com/thediveo/confspec/environ"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("lexing and parsing", func() {

	Context("identifiers", func() {

		It("parses an identifier", func() {
			Expect(parseName("_abc123DEF")).To(Equal("_abc123DEF"))
			Expect(parseName("_abc123def-foo")).To(Equal("_abc123def"))
			Expect(parseName("abc_123_def")).To(Equal("abc_123_def"))
		})

		It("parses identifiers with non-ASCII letters and numbers", func() {
			Expect(parseName("FOOé}")).To(Equal("FOOé"))
			Expect(parseName("größe_²")).To(Equal("größe_²"))
			Expect(parseName("a\xffb")).To(Equal("a"))
		})

		It("rejects non-identifiers", func() {
			Expect(parseName("123")).To(BeZero())
			Expect(parseName("$")).To(BeZero())
			Expect(parseName("éFOO")).To(BeZero())
		})

	})

	Context("references", func() {

		DescribeTable("well-formed references",
			func(s string, expected Reference) {
				expected.Expression = s
				ref, length, ok := parseReference(s + "trailing")
				Expect(ok).To(BeTrue())
				Expect(length).To(Equal(len(s)))
				Expect(ref).To(Equal(expected))
			},
			Entry(nil, "${FOO}", Reference{Name: "FOO"}),
			Entry(nil, "${FOO~}", Reference{Name: "FOO", Trim: true}),
			Entry(nil, "${FOO:}", Reference{Name: "FOO", HasDefault: true}),
			Entry(nil, "${FOO:bar baz}", Reference{Name: "FOO", Default: "bar baz", HasDefault: true}),
			Entry(nil, "${FOO:a:b?~[x]}", Reference{Name: "FOO", Default: "a:b?~[x]", HasDefault: true}),
			Entry(nil, "${FOO~:bar}", Reference{Name: "FOO", Trim: true, Default: "bar", HasDefault: true}),
			Entry(nil, "${FOO?}", Reference{Name: "FOO", NullIfUnset: true}),
			Entry(nil, "${FOO~?}", Reference{Name: "FOO", Trim: true, NullIfUnset: true}),
			Entry(nil, "${FOO[,]}", Reference{Name: "FOO", Delimiter: ",", HasDelimiter: true}),
			Entry(nil, "${FOO[::]~}", Reference{Name: "FOO", Delimiter: "::", HasDelimiter: true, Trim: true}),
			Entry(nil, "${FOO[,]~:a,b}", Reference{
				Name: "FOO", Delimiter: ",", HasDelimiter: true, Trim: true, Default: "a,b", HasDefault: true}),
			Entry(nil, "${_f00}", Reference{Name: "_f00"}),
		)

		DescribeTable("malformed references",
			func(s string) {
				_, _, ok := parseReference(s)
				Expect(ok).To(BeFalse())
			},
			Entry(nil, ""),
			Entry(nil, "$FOO"),
			Entry(nil, "${"),
			Entry(nil, "${}"),
			Entry(nil, "${FOO"),
			Entry(nil, "${1FOO}"),
			Entry(nil, "${FOO-bar}"),
			Entry(nil, "${FOO[]}"),
			Entry(nil, "${FOO[,}"),
			Entry(nil, "${FOO[,]x}"),
			Entry(nil, "${FOO:bar"),
			Entry(nil, "${FOO?bar}"),
			Entry(nil, "${FOO~~}"),
			Entry(nil, "${FOO:x}"[:7]),
		)

	})

	When("parsing into segments", func() {

		It("returns an empty string unmodified", func() {
			Expect(parse("")).To(BeEmpty())
		})

		It("returns a plain string unmodified", func() {
			Expect(parse("foo {-} $bar $ $$")).To(HaveExactElements(PlainText("foo {-} $bar $ $$")))
		})

		It("keeps incomplete references as text", func() {
			Expect(parse("foo${bar")).To(HaveExactElements(PlainText("foo${bar")))
			Expect(parse("${1} ${}")).To(HaveExactElements(PlainText("${1} ${}")))
		})

		It("parses a reference", func() {
			Expect(parse("foo${bar}baz")).To(HaveExactElements(
				PlainText("foo"),
				Reference{Expression: "${bar}", Name: "bar"},
				PlainText("baz"),
			))
		})

		It("parses a reference at the end", func() {
			Expect(parse("foo${bar}")).To(HaveExactElements(
				PlainText("foo"),
				Reference{Expression: "${bar}", Name: "bar"},
			))
		})

		It("parses adjacent references", func() {
			Expect(parse("${foo}${bar:}")).To(HaveExactElements(
				Reference{Expression: "${foo}", Name: "foo"},
				Reference{Expression: "${bar:}", Name: "bar", HasDefault: true},
			))
		})

		It("parses an escaped reference", func() {
			Expect(parse("$${FOO}")).To(HaveExactElements(Literal("${FOO}")))
			Expect(parse("a$${FOO[,]}b")).To(HaveExactElements(
				PlainText("a"), Literal("${FOO[,]}"), PlainText("b")))
		})

		It("swallows only a single escaping $", func() {
			Expect(parse("$$${FOO}")).To(HaveExactElements(
				PlainText("$"), Literal("${FOO}")))
		})

		It("doesn't swallow $ in front of an incomplete reference", func() {
			Expect(parse("$${FOO")).To(HaveExactElements(PlainText("$${FOO")))
		})

	})

	When("evaluating segments", func() {

		vars := environ.Map{
			"FOO":   "foo",
			"EMPTY": "",
			"SPACY": "  spacy  ",
		}

		It("returns plain text and literals", func() {
			Expect(PlainText("${FOO}").Text(vars)).To(Equal("${FOO}"))
			Expect(Literal("${FOO}").Text(vars)).To(Equal("${FOO}"))
		})

		It("substitutes values", func() {
			Expect(Reference{Name: "FOO"}.Text(vars)).To(Equal("foo"))
			Expect(Reference{Name: "EMPTY", Default: "x", HasDefault: true}.Text(vars)).To(BeEmpty())
			Expect(Reference{Name: "NADA", Default: "x", HasDefault: true}.Text(vars)).To(Equal("x"))
			Expect(Reference{Name: "SPACY"}.Text(vars)).To(Equal("  spacy  "))
			Expect(Reference{Name: "SPACY", Trim: true}.Text(vars)).To(Equal("spacy"))
			Expect(Reference{Name: "NADA", Trim: true, Default: " x ", HasDefault: true}.Text(vars)).To(Equal("x"))
			Expect(Reference{Name: "FOO", NullIfUnset: true}.Text(vars)).To(Equal("foo"))
		})

		It("reports unset variables", func() {
			var lookuperr *LookupError
			_, err := Reference{Name: "NADA"}.Text(vars)
			Expect(errors.As(err, &lookuperr)).To(BeTrue())
			Expect(lookuperr.Name).To(Equal("NADA"))
			Expect(lookuperr.Error()).To(ContainSubstring("'NADA' is not set"))
		})

		It("rejects embedded lists and null-if-unset", func() {
			var synerr *SyntaxError
			_, err := Reference{Expression: "${FOO[,]}", Name: "FOO", Delimiter: ",", HasDelimiter: true}.Text(vars)
			Expect(errors.As(err, &synerr)).To(BeTrue())
			Expect(synerr.Expression).To(Equal("${FOO[,]}"))
			Expect(synerr.Error()).To(ContainSubstring("list expansion is not supported within strings"))

			_, err = Reference{Expression: "${NADA?}", Name: "NADA", NullIfUnset: true}.Text(vars)
			Expect(errors.As(err, &synerr)).To(BeTrue())
			Expect(synerr.Expression).To(Equal("${NADA?}"))
		})

		It("concatenates segments", func() {
			segs := Segments{PlainText("This "), Reference{Name: "FOO"}, PlainText(" is "), Literal("${FOO}")}
			Expect(segs.Text(vars)).To(Equal("This foo is ${FOO}"))
		})

		It("stops at the first failing segment", func() {
			segs := Segments{PlainText("This "), Reference{Name: "NADA"}}
			Expect(segs.Text(vars)).Error().To(HaveOccurred())
		})

	})

})
