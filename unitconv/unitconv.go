// Package unitconv converts between the native units of radio sensor
// payloads and their SI or customary counterparts, and formats values for
// presentation. It is plain value-to-value arithmetic with no dependency
// on the checksum core.
package unitconv

import "fmt"

// CelsiusToFahrenheit converts a temperature in degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts a temperature in degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// KmphToMph converts a speed in kilometers per hour to miles per hour.
func KmphToMph(kmph float64) float64 {
	return kmph / 1.609344
}

// MphToKmph converts a speed in miles per hour to kilometers per hour.
func MphToKmph(mph float64) float64 {
	return mph * 1.609344
}

// MmToInch converts a length in millimeters to inches.
func MmToInch(mm float64) float64 {
	return mm * 0.039370
}

// InchToMm converts a length in inches to millimeters.
func InchToMm(inch float64) float64 {
	return inch * 25.4
}

// KpaToPsi converts a pressure in kilopascal to pounds per square inch.
func KpaToPsi(kpa float64) float64 {
	return kpa / 6.89475729
}

// PsiToKpa converts a pressure in pounds per square inch to kilopascal.
func PsiToKpa(psi float64) float64 {
	return psi * 6.89475729
}

// HpaToInhg converts a pressure in hectopascal to inches of mercury.
func HpaToInhg(hpa float64) float64 {
	return hpa / 33.8639
}

// InhgToHpa converts a pressure in inches of mercury to hectopascal.
func InhgToHpa(inhg float64) float64 {
	return inhg * 33.8639
}

// NiceFreq formats a frequency in Hz as a human-readable string,
// scaled to GHz, MHz or kHz as appropriate:
//
//	NiceFreq(433.92e6) == "433.920MHz"
func NiceFreq(hz float64) string {
	switch {
	case hz >= 1e9:
		return fmt.Sprintf("%.3fGHz", hz*1e-9)
	case hz >= 1e6:
		return fmt.Sprintf("%.3fMHz", hz*1e-6)
	case hz >= 1e3:
		return fmt.Sprintf("%.3fkHz", hz*1e-3)
	}

	return fmt.Sprintf("%.0fHz", hz)
}
