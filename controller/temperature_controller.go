package controller

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"practice-cli/models"
	"practice-cli/services/convert"
	"practice-cli/utils"
	"practice-cli/views"
)

// TemperatureController runs f_to_c: one reading in, one conversion out.
type TemperatureController struct {
	console *views.Console
}

func NewTemperatureController(console *views.Console) *TemperatureController {
	return &TemperatureController{console: console}
}

func (tc *TemperatureController) Run(_ context.Context) error {
	line, err := tc.console.Prompt(views.TemperatureUsage, views.TemperatureHint)
	if err != nil && !errors.Is(err, utils.ErrEndOfInput) {
		return err
	}
	fields := strings.Fields(line)

	value, err := parseTemperatureValue(line, fields)
	if err != nil {
		utils.L().Debug("value rejected, using 0: %v", err)
		tc.console.Println(views.ParseFailure)
	}

	if len(fields) < 2 {
		tc.console.Println(views.InvalidReading)
		return nil
	}
	scale, ok := models.ParseScale(fields[1])
	if !ok {
		tc.console.Println(views.InvalidReading)
		return nil
	}

	from := models.Temperature{Value: value, Scale: scale}
	tc.console.Println(views.Conversion(from, convert.Convert(from)))
	return nil
}

// parseTemperatureValue reads the first field; on failure the neutral value
// 0 is returned alongside the error.
func parseTemperatureValue(line string, fields []string) (float64, error) {
	if len(fields) == 0 {
		return 0, utils.ParseErrorf(line, "missing temperature")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, utils.ParseErrorf(line, "temperature: %v", err)
	}
	return v, nil
}
