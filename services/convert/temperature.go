// Package convert translates temperatures between Fahrenheit and Celsius.
package convert

import "practice-cli/models"

// FahrenheitToCelsius applies (t - 32) * 5 / 9.
func FahrenheitToCelsius(t float64) float64 {
	return (t - 32) * 5 / 9
}

// CelsiusToFahrenheit applies t * 9 / 5 + 32.
func CelsiusToFahrenheit(t float64) float64 {
	return t*9/5 + 32
}

// Convert returns t expressed in the other scale.
func Convert(t models.Temperature) models.Temperature {
	if t.Scale == models.Celsius {
		return models.Temperature{Value: CelsiusToFahrenheit(t.Value), Scale: models.Fahrenheit}
	}
	return models.Temperature{Value: FahrenheitToCelsius(t.Value), Scale: models.Celsius}
}
