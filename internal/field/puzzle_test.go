package field_test

import (
	"encoding/json"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/skilldrill/internal/field"
	"github.com/san-kum/skilldrill/internal/widget"
)

type fakeHost struct {
	calls    []string
	finished []bool
}

func (h *fakeHost) Finish(correct bool) {
	h.finished = append(h.finished, correct)
	h.calls = append(h.calls, fmt.Sprintf("finish(%v)", correct))
}

func (h *fakeHost) Log(response string) {
	h.calls = append(h.calls, fmt.Sprintf("log(%s)", response))
}

var _ = Describe("Puzzle", func() {
	var (
		host *fakeHost
		data field.Data
	)

	BeforeEach(func() {
		host = &fakeHost{}
		data = field.Data{
			Field:  [][]int{{1, 1, 0}, {0, 0, 0}, {1, 1, 1}, {0, 1, 1}},
			Answer: "7",
		}
	})

	Describe("rendering", func() {
		It("renders only rows with a nonzero sum", func() {
			p, err := field.New(field.Data{Field: [][]int{{0, 0}, {1, 0}, {0, 0}}, Answer: "1"}, host)
			Expect(err).NotTo(HaveOccurred())

			rows := p.Rows()
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Source).To(Equal(1))
			Expect(rows[0].Cells).To(Equal([]field.Cell{field.Filled, field.Empty}))
		})

		It("keeps the source index of every rendered row", func() {
			p, err := field.New(data, host)
			Expect(err).NotTo(HaveOccurred())

			var sources []int
			for _, r := range p.Rows() {
				sources = append(sources, r.Source)
			}
			Expect(sources).To(Equal([]int{0, 2, 3}))
			Expect(p.MarkedCount()).To(Equal(7))
			Expect(data.Marked()).To(Equal(7))
		})

		It("only fills cells equal to one", func() {
			p, err := field.New(field.Data{Field: [][]int{{2, 1}}, Answer: "1"}, host)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Rows()[0].Cells).To(Equal([]field.Cell{field.Empty, field.Filled}))
		})

		It("awaits a response once rendered", func() {
			p, err := field.New(data, host)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.State()).To(Equal(field.AwaitingResponse))
			Expect(host.calls).To(BeEmpty())
		})

		It("does not expose its rows for mutation", func() {
			p, _ := field.New(data, host)
			p.Rows()[0].Cells[0] = field.Empty
			Expect(p.Rows()[0].Cells[0]).To(Equal(field.Filled))
		})
	})

	DescribeTable("rejects malformed grids",
		func(grid [][]int) {
			_, err := field.New(field.Data{Field: grid, Answer: "0"}, host)
			Expect(err).To(MatchError(widget.ErrValidation))
		},
		Entry("no rows", [][]int{}),
		Entry("empty row", [][]int{{1, 0}, {}}),
		Entry("ragged rows", [][]int{{1, 0}, {1}}),
	)

	It("rejects a nil host", func() {
		_, err := field.New(data, nil)
		Expect(err).To(MatchError(widget.ErrValidation))
	})

	Describe("responses", func() {
		var p *field.Puzzle

		BeforeEach(func() {
			var err error
			p, err = field.New(data, host)
			Expect(err).NotTo(HaveOccurred())
		})

		It("logs every edit without debouncing", func() {
			Expect(p.SetResponse("")).To(Succeed())
			Expect(p.SetResponse("7")).To(Succeed())
			Expect(p.SetResponse("7")).To(Succeed())
			Expect(host.calls).To(Equal([]string{"log()", "log(7)", "log(7)"}))
			Expect(p.Response()).To(Equal("7"))
		})

		It("finishes exactly once", func() {
			Expect(p.SetResponse("7")).To(Succeed())
			Expect(p.Submit()).To(Succeed())
			Expect(p.State()).To(Equal(field.Submitted))
			Expect(host.finished).To(Equal([]bool{true}))

			err := p.Submit()
			Expect(err).To(MatchError(widget.ErrInvalidState))
			Expect(host.finished).To(Equal([]bool{true}))
		})

		It("refuses edits after submission", func() {
			Expect(p.SetResponseAndSubmit("3")).To(Succeed())
			Expect(p.SetResponse("7")).To(MatchError(widget.ErrInvalidState))
			Expect(p.Response()).To(Equal("3"))
		})

		It("logs before finishing when composed", func() {
			Expect(p.SetResponseAndSubmit("7")).To(Succeed())
			Expect(host.calls).To(Equal([]string{"log(7)", "finish(true)"}))
		})

		It("reports a wrong answer", func() {
			Expect(p.SetResponseAndSubmit("8")).To(Succeed())
			Expect(host.finished).To(Equal([]bool{false}))

			correct, ok := p.Verdict()
			Expect(ok).To(BeTrue())
			Expect(correct).To(BeFalse())
		})

		It("treats an unanswered submission as wrong", func() {
			Expect(p.Submit()).To(Succeed())
			Expect(host.finished).To(Equal([]bool{false}))
		})

		It("has no verdict before submission", func() {
			_, ok := p.Verdict()
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("Answer", func() {
	DescribeTable("Matches",
		func(answer field.Answer, response string, expected bool) {
			Expect(answer.Matches(response)).To(Equal(expected))
		},
		Entry("identical", field.Answer("7"), "7", true),
		Entry("surrounding space", field.Answer("7"), " 7 ", true),
		Entry("leading zero", field.Answer("7"), "07", true),
		Entry("different number", field.Answer("7"), "8", false),
		Entry("non numeric", field.Answer("seven"), "seven", true),
		Entry("non numeric mismatch", field.Answer("seven"), "7", false),
		Entry("empty response", field.Answer("0"), "", false),
		Entry("decimal form of an integer", field.Answer("7"), "7.0", false),
		Entry("integer against a decimal answer", field.Answer("7.0"), "7", false),
	)

	It("decodes numbers and strings from yaml", func() {
		var d field.Data
		Expect(yaml.Unmarshal([]byte("field: [[1, 0]]\nanswer: 1\n"), &d)).To(Succeed())
		Expect(d.Answer).To(Equal(field.Answer("1")))

		Expect(yaml.Unmarshal([]byte("field: [[1]]\nanswer: \"one\"\n"), &d)).To(Succeed())
		Expect(d.Answer).To(Equal(field.Answer("one")))
	})

	It("decodes numbers and strings from json", func() {
		var d field.Data
		Expect(json.Unmarshal([]byte(`{"field": [[1, 1]], "answer": 2}`), &d)).To(Succeed())
		Expect(d.Answer).To(Equal(field.Answer("2")))
		Expect(d.Field).To(Equal([][]int{{1, 1}}))

		Expect(json.Unmarshal([]byte(`{"answer": "2"}`), &d)).To(Succeed())
		Expect(d.Answer).To(Equal(field.Answer("2")))
	})

	It("rejects a non-scalar answer", func() {
		var d field.Data
		err := yaml.Unmarshal([]byte("field: [[1]]\nanswer: [1, 2]\n"), &d)
		Expect(err).To(HaveOccurred())
	})
})
