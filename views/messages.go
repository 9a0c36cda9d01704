package views

import (
	"fmt"

	"practice-cli/models"
)

// Fixed prompts and replies. Programs and tests share these so the wording
// lives in one place.
const (
	TendencyPrompt   = "Please enter an integer range (start, end) separated by a whitespace, for example: 2 20"
	InvalidRange     = "Invalid range, using (0, 0)"
	EmptySample      = "The sample is empty, mean defaults to 0."
	TemperatureUsage = "Please enter a temperature followed by a whitespace and F or C"
	TemperatureHint  = "Ex: 32 F (32 degrees Fahrenheit)"
	ParseFailure     = "Could not parse user input"
	InvalidReading   = "Invalid reading"
	GuessIntro       = "Guess the number!"
	GuessPrompt      = "Please enter your guess."
	TooLow           = "Too low!"
	TooHigh          = "Too high!"
	JustRight        = "Just right!"
	FibPrompt        = "Please enter a sequence number."
	FibNotANumber    = "Not a number! Please enter a number!"
	PigLatinPrompt   = "Please enter a word:"
	ReversePrompt    = "Please enter a string: "
	ReadFailure      = "Failed to read line!"

	MenuHeader       = "Please select an operation:"
	QuitSentinel     = "q"
	Goodbye          = "Goodbye!"
	InvalidOption    = "Invalid option!"
	EmployeePrompt   = `Please enter "<name> <department>":`
	InvalidEmployee  = "Invalid employee entry!"
	DepartmentPrompt = "Please enter a department name:"
)

// MenuOptions lists the departments operations in dispatch order.
var MenuOptions = []string{
	"1) Add employee to a department",
	"2) Retrieve list of employees per department",
	"3) Print employees of a department",
	"4) Remove employee from a department",
}

// Welcome is printed once when the departments program starts.
func Welcome(company string) string {
	return fmt.Sprintf("Welcome to %s department database!", company)
}

// Menu returns the body printed on every iteration.
func Menu() []string {
	lines := make([]string, 0, len(MenuOptions)+1)
	lines = append(lines, MenuHeader)
	return append(lines, MenuOptions...)
}

// Banner frames a department name in a listing.
func Banner(dept string) string {
	return "--------" + dept + "--------"
}

// GuessRange tells the player the bounds of the secret.
func GuessRange(lo, hi uint32) string {
	return fmt.Sprintf("Please input a number between %d & %d", lo, hi)
}

// Measures renders the sample line of central_tendency.
func Measures(s models.Sample) string {
	return "Measures: " + s.String()
}

// Mean renders the mean line.
func Mean(m float32) string {
	return "Mean: " + models.FormatFloat32(m)
}

// Mode renders the mode line.
func Mode(v int32) string {
	return fmt.Sprintf("Mode: %d", v)
}

// Median renders the median line.
func Median(v int32) string {
	return fmt.Sprintf("Median: %d", v)
}

// Conversion renders "32 F <---> 0 C".
func Conversion(from, to models.Temperature) string {
	return from.String() + " <---> " + to.String()
}

// Guessed echoes the player's guess.
func Guessed(n uint32) string {
	return fmt.Sprintf("You guessed: %d", n)
}

// FibResult renders "The 10 fibonacci number is: 55".
func FibResult(n, v int64) string {
	return fmt.Sprintf("The %d fibonacci number is: %d", n, v)
}

// FibOverflow explains that fib(n) is out of range.
func FibOverflow(n int64) string {
	return fmt.Sprintf("The %d fibonacci number does not fit in 64 bits.", n)
}

// PigLatin renders the pig_latin result line.
func PigLatin(token, result string) string {
	return token + " in pig latin is " + result
}

// RectangleArea renders the rectangles output line.
func RectangleArea(r models.Rectangle) string {
	return "The area of the rectangle is " + r.AreaString() + " square pixels."
}

// Reversed renders "hello reversed is olleh".
func Reversed(original, reversed string) string {
	return original + " reversed is " + reversed
}
