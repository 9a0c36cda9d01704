package controller

import (
	"context"
	"math/rand"
	"strconv"
	"strings"
	"testing/iotest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"practice-cli/services/stats"
	"practice-cli/utils"
	"practice-cli/views"
)

var _ = Describe("TemperatureController", func() {
	run := func(input string) []string {
		console, out := newSession(input)
		Expect(NewTemperatureController(console).Run(context.Background())).To(Succeed())
		return outputLines(out)
	}
	prompt := []string{views.TemperatureUsage, views.TemperatureHint}

	DescribeTable("conversions",
		func(input, want string) {
			Expect(run(input)).To(Equal(concat(prompt, []string{want})))
		},
		Entry("freezing point", "32 F\n", "32 F <---> 0 C"),
		Entry("boiling point", "100 C\n", "100 C <---> 212 F"),
		Entry("crossover", "-40 F\n", "-40 F <---> -40 C"),
		Entry("fractional", "37.5 C\n", "37.5 C <---> 99.5 F"),
		Entry("extra fields are ignored", "  212   F  trailing\n", "212 F <---> 100 C"),
	)

	It("rejects an unknown scale", func() {
		Expect(run("32 K\n")).To(Equal(concat(prompt, []string{views.InvalidReading})))
	})

	It("treats the scale case-sensitively", func() {
		Expect(run("32 f\n")).To(Equal(concat(prompt, []string{views.InvalidReading})))
	})

	It("reports a missing scale", func() {
		Expect(run("32\n")).To(Equal(concat(prompt, []string{views.InvalidReading})))
	})

	It("falls back to zero when the value does not parse", func() {
		lines := run("warm F\n")
		Expect(lines).To(HaveLen(4))
		Expect(lines[2]).To(Equal(views.ParseFailure))
		Expect(lines[3]).To(HavePrefix("0 F <---> -17.7"))
	})

	It("reports both problems on empty input", func() {
		Expect(run("")).To(Equal(concat(prompt, []string{views.ParseFailure, views.InvalidReading})))
	})

	It("returns read failures", func() {
		console, _ := newSessionFrom(iotest.ErrReader(iotest.ErrTimeout))
		err := NewTemperatureController(console).Run(context.Background())
		Expect(utils.IsReadError(err)).To(BeTrue())
	})
})

var _ = Describe("FibController", func() {
	run := func(input string) []string {
		console, out := newSession(input)
		Expect(NewFibController(console).Run(context.Background())).To(Succeed())
		return outputLines(out)
	}

	DescribeTable("answers",
		func(input, want string) {
			Expect(run(input)).To(Equal([]string{views.FibPrompt, want}))
		},
		Entry("tenth", "10\n", "The 10 fibonacci number is: 55"),
		Entry("zeroth", "0\n", "The 0 fibonacci number is: 0"),
		Entry("first", "1\n", "The 1 fibonacci number is: 1"),
		Entry("padded", "  20 \n", "The 20 fibonacci number is: 6765"),
		Entry("largest", "92\n", "The 92 fibonacci number is: 7540113804746346429"),
		Entry("overflow", "93\n", "The 93 fibonacci number does not fit in 64 bits."),
		Entry("word", "ten\n", views.FibNotANumber),
		Entry("negative", "-3\n", views.FibNotANumber),
		Entry("empty input", "", views.FibNotANumber),
	)
})

var _ = Describe("text controllers", func() {
	It("translates to pig latin", func() {
		for input, want := range map[string]string{
			"apple\n":   "apple in pig latin is apple-hay",
			"first\n":   "first in pig latin is irst-fay",
			"  rust \n": "rust in pig latin is ust-ray",
		} {
			console, out := newSession(input)
			Expect(NewPigLatinController(console).Run(context.Background())).To(Succeed())
			Expect(outputLines(out)).To(Equal([]string{views.PigLatinPrompt, want}))
		}
	})

	It("reverses the whole line", func() {
		console, out := newSession("hello\n")
		Expect(NewReverseController(console).Run(context.Background())).To(Succeed())
		Expect(outputLines(out)).To(Equal([]string{views.ReversePrompt, "hello reversed is olleh"}))
	})

	It("keeps inner whitespace and multi-byte characters", func() {
		console, out := newSession(" ab çd\r\n")
		Expect(NewReverseController(console).Run(context.Background())).To(Succeed())
		Expect(outputLines(out)).To(Equal([]string{views.ReversePrompt, " ab çd reversed is dç ba "}))
	})
})

var _ = Describe("RectangleController", func() {
	It("prints the default area", func() {
		console, out := newSession("")
		rc := NewRectangleController(utils.DefaultConfig().Rectangle, console)
		Expect(rc.Run(context.Background())).To(Succeed())
		Expect(out.String()).To(Equal("The area of the rectangle is 1500 square pixels.\n"))
	})

	It("uses configured dimensions", func() {
		console, out := newSession("")
		rc := NewRectangleController(utils.RectangleConfig{Width: 4294967295, Height: 2}, console)
		Expect(rc.Run(context.Background())).To(Succeed())
		Expect(out.String()).To(ContainSubstring(" 8589934590 square pixels."))
	})
})

var _ = Describe("TendencyController", func() {
	run := func(input string, seed int64) []string {
		console, out := newSession(input)
		gen := stats.NewGenerator(rand.New(rand.NewSource(seed)), utils.DefaultMaxSampleSize)
		Expect(NewTendencyController(console, gen).Run(context.Background())).To(Succeed())
		return outputLines(out)
	}
	empty := []string{views.TendencyPrompt, "Measures: []", views.EmptySample, "Mean: 0"}

	It("reports an empty sample for a degenerate range", func() {
		Expect(run("5 5\n", 1)).To(Equal(concat(
			[]string{views.TendencyPrompt, views.InvalidRange},
			empty[1:],
		)))
	})

	DescribeTable("invalid ranges fall back to (0, 0)",
		func(input string) {
			Expect(run(input, 1)).To(Equal(concat(
				[]string{views.TendencyPrompt, views.InvalidRange},
				empty[1:],
			)))
		},
		Entry("reversed", "20 2\n"),
		Entry("single value", "7\n"),
		Entry("three values", "1 2 3\n"),
		Entry("not numbers", "a b\n"),
		Entry("out of 32-bit range", "0 3000000000\n"),
		Entry("no input", ""),
	)

	It("produces an empty sample when the drawn size is negative", func() {
		Expect(run("-10 -5\n", 3)).To(Equal(empty))
	})

	It("prints a sorted sample and its measures", func() {
		for seed := int64(0); seed < 20; seed++ {
			lines := run("2 20\n", seed)
			Expect(lines).To(HaveLen(5))
			Expect(lines[0]).To(Equal(views.TendencyPrompt))
			Expect(lines[1]).To(HavePrefix("Measures: ["))
			Expect(lines[2]).To(HavePrefix("Mean: "))
			Expect(lines[3]).To(HavePrefix("Mode: "))
			Expect(lines[4]).To(HavePrefix("Median: "))

			values := parseMeasures(lines[1])
			Expect(len(values)).To(BeNumerically(">=", 2))
			Expect(len(values)).To(BeNumerically("<", 20))
			for i, v := range values {
				Expect(v).To(BeNumerically(">=", 2))
				Expect(v).To(BeNumerically("<", 20))
				if i > 0 {
					Expect(v).To(BeNumerically(">=", values[i-1]))
				}
			}
			Expect(lines[4]).To(Equal("Median: " + strconv.Itoa(values[len(values)/2])))
		}
	})
})

var _ = Describe("GuessController", func() {
	cfg := utils.GuessConfig{Min: 42, Max: 42}
	turn := []string{views.GuessIntro, "Please input a number between 42 & 42", views.GuessPrompt}

	It("draws the secret within the configured bounds", func() {
		console, _ := newSession("")
		for seed := int64(0); seed < 50; seed++ {
			gen := stats.NewGenerator(rand.New(rand.NewSource(seed)), 0)
			secret := NewGuessController(utils.GuessConfig{Min: 1, Max: 100}, console, gen).Secret()
			Expect(secret).To(BeNumerically(">=", 1))
			Expect(secret).To(BeNumerically("<=", 100))
		}
	})

	It("guides the player to the secret", func() {
		console, out := newSession("abc\n10\n  90 \n42\n7\n")
		gc := NewGuessController(cfg, console, stats.NewGenerator(nil, 0))
		Expect(gc.Secret()).To(Equal(uint32(42)))
		Expect(gc.Run(context.Background())).To(Succeed())

		Expect(outputLines(out)).To(Equal(concat(
			turn,
			turn, []string{"You guessed: 10", views.TooLow},
			turn, []string{"You guessed: 90", views.TooHigh},
			turn, []string{"You guessed: 42", views.JustRight},
		)))
		Expect(gc.Attempts()).To(Equal(3))
	})

	It("ignores negative and oversized guesses", func() {
		console, out := newSession("-1\n4294967296\n42\n")
		gc := NewGuessController(cfg, console, stats.NewGenerator(nil, 0))
		Expect(gc.Run(context.Background())).To(Succeed())
		Expect(gc.Attempts()).To(Equal(1))
		Expect(outputLines(out)).To(Equal(concat(turn, turn, turn,
			[]string{"You guessed: 42", views.JustRight})))
	})

	It("exits quietly when input ends", func() {
		console, out := newSession("1\n")
		gc := NewGuessController(cfg, console, stats.NewGenerator(nil, 0))
		Expect(gc.Run(context.Background())).To(Succeed())
		Expect(outputLines(out)).To(Equal(concat(turn, []string{"You guessed: 1", views.TooLow}, turn)))
	})

	It("returns read failures", func() {
		console, _ := newSessionFrom(iotest.ErrReader(iotest.ErrTimeout))
		gc := NewGuessController(cfg, console, stats.NewGenerator(nil, 0))
		Expect(utils.IsReadError(gc.Run(context.Background()))).To(BeTrue())
	})
})

// parseMeasures extracts the integers of a "Measures: [a, b]" line.
func parseMeasures(line string) []int {
	body := strings.TrimSuffix(strings.TrimPrefix(line, "Measures: ["), "]")
	if body == "" {
		return nil
	}
	var values []int
	for _, f := range strings.Split(body, ", ") {
		v, err := strconv.Atoi(f)
		Expect(err).NotTo(HaveOccurred())
		values = append(values, v)
	}
	return values
}
