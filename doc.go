// Package max7219 controls MAX7219/MAX7221 seven-segment LED display
// controllers via SPI.
//
// The MAX7219 multiplexes up to 8 seven-segment digits (or an 8x8 LED
// matrix). Every interaction with the chip is a 2-byte register write; the
// registers are write-only and nothing meaningful comes back on the bus.
//
// # Chip Characteristics
//
// - 8 digit registers, each holding a raw segment bitmask or a Code B value
// - Per-digit decode mode: hardware Code B decoding vs raw segments
// - 16 intensity levels (0-15)
// - Scan limit selecting how many digits are multiplexed (1-8)
// - Shutdown and display-test modes, independent of each other
//
// # Hardware Connection
//
// Connect the MAX7219 to your system via SPI:
//
//	Chip Pin → System Pin
//	GND      → GND
//	VCC      → 5V
//	CLK      → SPI Clock (SCLK)
//	DIN      → SPI Data (MOSI)
//	CS/LOAD  → SPI Chip Select (CE0, CE1, ...)
//
// With several chips, wire each chip's CS/LOAD to its own chip-select line.
// The driver addresses one chip at a time by opening the port behind that
// chip's chip-select; see SelectChip.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/mattjbones/max7219"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		// Create device: one chip on SPI bus 0
//		dev, err := max7219.New(max7219.SPIOpener(0), nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Close()
//
//		// Wake the chip and show "3.14" right-aligned
//		dev.Startup()
//		dev.SetDecodeNone()
//		dev.SetScanLimit(8)
//		dev.SetIntensity(8)
//		dev.ClearDisplay()
//		dev.SetDigitSymbol(2, '3', true)
//		dev.SetDigitSymbol(1, '1', false)
//		dev.SetDigitSymbol(0, '4', false)
//	}
//
// # Decode Modes
//
// Each digit is either in raw (no-decode) mode, where its register holds a
// segment bitmask, or in Code B decode mode, where the hardware translates a
// small numeric code into a digit shape. The driver remembers the last
// decode vector written and uses it in ClearDisplay to blank each digit
// through the correct path. SetDigitByte, SetDigitSegments and
// SetDigitSymbol are meant for digits in no-decode mode.
//
// # Multiple Chips
//
// Pass Opts{Chips: n} and switch between chips with SelectChip. Selecting a
// chip closes the active port and opens another, so batch writes per chip
// instead of re-selecting per frame. Broadcast-style shift-register chaining
// through a single chip-select is not supported.
//
// # Concurrency
//
// Dev is not safe for concurrent use. The bus is half-duplex and shared;
// serialize access externally if multiple goroutines share a Dev.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package max7219
