// Package max7219 controls MAX7219/MAX7221 seven-segment LED display
// controllers via SPI.
//
// The MAX7219 drives up to 8 seven-segment digits (or an 8x8 LED matrix) from
// 2-byte register writes. Its registers are write-only; nothing meaningful
// comes back on the bus.
//
// See the examples for how to use this package.
package max7219

import (
	"errors"
	"fmt"

	"github.com/mattjbones/max7219/segment"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// Register is a one-byte MAX7219 register address.
type Register byte

// The MAX7219 register map. Digit registers 0x01-0x08 hold the content of
// digit positions 0-7.
const (
	NoOp        Register = 0x00
	Digit0      Register = 0x01
	Digit1      Register = 0x02
	Digit2      Register = 0x03
	Digit3      Register = 0x04
	Digit4      Register = 0x05
	Digit5      Register = 0x06
	Digit6      Register = 0x07
	Digit7      Register = 0x08
	DecodeMode  Register = 0x09
	Intensity   Register = 0x0A
	ScanLimit   Register = 0x0B
	Shutdown    Register = 0x0C
	DisplayTest Register = 0x0F
)

// codeBBlank blanks a digit that is in Code B decode mode. Writing 0x00 to a
// decoded digit would display '0', not an empty digit.
const codeBBlank byte = 0x0F

// Opener opens the SPI port wired to the chip at the given chain position.
// Each chip sits behind its own hardware chip-select, so addressing a chip
// means opening its port.
type Opener func(index int) (spi.PortCloser, error)

// SPIOpener returns an Opener that resolves chip positions to spireg port
// names on the given bus: chip 0 is "SPI<bus>.0", chip 1 is "SPI<bus>.1" and
// so on.
func SPIOpener(bus int) Opener {
	return func(index int) (spi.PortCloser, error) {
		return spireg.Open(fmt.Sprintf("SPI%d.%d", bus, index))
	}
}

// Opts is the configuration for a chain of MAX7219 chips.
type Opts struct {
	// Chips is the number of chips in the chain (default: 1).
	Chips int
	// Chip is the chip selected when the device is created (default: 0).
	Chip int
	// Freq is the SPI clock frequency (default: 10MHz, the chip's maximum).
	Freq physic.Frequency
}

// Dev is the device handle for a chain of MAX7219 chips.
//
// A Dev owns at most one open SPI port at a time, bound to the active chip.
// It keeps no write queue and is not safe for concurrent use; transfers to
// the same chip must be issued one at a time.
type Dev struct {
	open Opener

	// Port state for the active chip
	port spi.PortCloser
	conn spi.Conn
	freq physic.Frequency

	// Chain addressing
	active int
	chips  int

	// Last decode mode written, one flag per digit. The zero value (all
	// no-decode) stands in until SetDecodeMode is called.
	decode [8]bool
}

// New creates a device handle for a chain of MAX7219 chips, eagerly opening
// the port of the initially selected chip.
//
// The SPI port is configured for 10MHz (or opts.Freq), Mode0, 8-bit transfers.
//
// opts can be nil to use defaults (a single chip).
func New(open Opener, opts *Opts) (*Dev, error) {
	if open == nil {
		return nil, errors.New("max7219: an Opener is required")
	}
	if opts == nil {
		opts = &Opts{Chips: 1}
	}

	if opts.Chips < 1 {
		return nil, fmt.Errorf("max7219: chip count must be at least 1, got %d", opts.Chips)
	}
	if opts.Chip < 0 || opts.Chip >= opts.Chips {
		return nil, fmt.Errorf("max7219: initial chip %d out of range [0,%d)", opts.Chip, opts.Chips)
	}

	freq := opts.Freq
	if freq == 0 {
		freq = 10 * physic.MegaHertz
	}

	d := &Dev{
		open:  open,
		freq:  freq,
		chips: opts.Chips,
	}
	if err := d.connect(opts.Chip); err != nil {
		return nil, err
	}
	return d, nil
}

// connect opens the port for the chip at index and makes it the active chip.
func (d *Dev) connect(index int) error {
	port, err := d.open(index)
	if err != nil {
		return fmt.Errorf("max7219: opening port for chip %d: %w", index, err)
	}

	// The MAX7219 latches on Mode0. The MAX7221 additionally works in Mode3.
	c, err := port.Connect(d.freq, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return fmt.Errorf("max7219: connecting to chip %d: %w", index, err)
	}

	d.port = port
	d.conn = c
	d.active = index
	return nil
}

// SelectChip closes the active chip's port and opens the port of the chip at
// index instead. Subsequent register writes go to that chip.
//
// This is a heavyweight operation (it cycles a hardware handle); select a
// chip once and issue a batch of writes rather than re-selecting per frame.
// An out-of-range index fails before the active port is touched.
func (d *Dev) SelectChip(index int) error {
	if index < 0 || index >= d.chips {
		return fmt.Errorf("max7219: chip index %d out of range [0,%d)", index, d.chips)
	}

	// Release before acquire so at most one port is ever open.
	if d.port != nil {
		if err := d.port.Close(); err != nil {
			return fmt.Errorf("max7219: closing port for chip %d: %w", d.active, err)
		}
		d.port = nil
		d.conn = nil
	}

	return d.connect(index)
}

// ActiveChip returns the chain position of the chip register writes currently
// go to.
func (d *Dev) ActiveChip() int {
	return d.active
}

// Startup takes the active chip out of shutdown mode. On the wire, 1 in the
// shutdown register means normal operation.
func (d *Dev) Startup() error {
	return d.shiftOut(Shutdown, 1)
}

// Shutdown puts the active chip in shutdown mode, blanking the display while
// retaining register contents.
func (d *Dev) Shutdown() error {
	return d.shiftOut(Shutdown, 0)
}

// StartDisplayTest forces all segments on, regardless of power mode and
// without altering other registers.
func (d *Dev) StartDisplayTest() error {
	return d.shiftOut(DisplayTest, 1)
}

// StopDisplayTest returns the chip to normal (non-test) operation.
func (d *Dev) StopDisplayTest() error {
	return d.shiftOut(DisplayTest, 0)
}

// SetDecodeMode configures, digit by digit, whether the chip decodes data as
// Code B (true) or takes it as a raw segment bitmask (false). modes must hold
// exactly 8 flags, one per digit position.
func (d *Dev) SetDecodeMode(modes []bool) error {
	b, err := segment.PackBits(modes)
	if err != nil {
		return fmt.Errorf("max7219: decode mode needs one flag per digit: %w", err)
	}
	if err := d.shiftOut(DecodeMode, b); err != nil {
		return err
	}
	copy(d.decode[:], modes)
	return nil
}

// SetDecodeNone puts all 8 digits in raw segment mode.
func (d *Dev) SetDecodeNone() error {
	return d.SetDecodeMode(make([]bool, 8))
}

// SetDecodeAll puts all 8 digits in Code B decode mode.
func (d *Dev) SetDecodeAll() error {
	modes := make([]bool, 8)
	for i := range modes {
		modes[i] = true
	}
	return d.SetDecodeMode(modes)
}

// SetDigitByte writes b verbatim to the register of digit n. The byte is a
// segment bitmask, so this is only meaningful for a digit in no-decode mode.
func (d *Dev) SetDigitByte(n int, b byte) error {
	reg, err := digitRegister(n)
	if err != nil {
		return err
	}
	return d.shiftOut(reg, b)
}

// SetDigitSegments lights digit n from 8 individual segment flags, in the
// order [G F E D C B A DP]. segments must hold exactly 8 flags.
func (d *Dev) SetDigitSegments(n int, segments []bool) error {
	reg, err := digitRegister(n)
	if err != nil {
		return err
	}
	b, err := segment.PackBits(segments)
	if err != nil {
		return fmt.Errorf("max7219: digit %d needs one flag per segment: %w", n, err)
	}
	return d.shiftOut(reg, b)
}

// SetDigitSymbol displays sym on digit n, lighting the decimal point as well
// if dp is set. Characters without a 7-segment shape render blank; only an
// out-of-range n fails.
func (d *Dev) SetDigitSymbol(n int, sym rune, dp bool) error {
	reg, err := digitRegister(n)
	if err != nil {
		return err
	}
	b := segment.Lookup(sym)
	if dp {
		b |= segment.DP
	}
	return d.shiftOut(reg, b)
}

// ClearDisplay blanks all 8 digits of the active chip. Digits in Code B
// decode mode get the Code B blank value rather than a raw zero, so the
// hardware's decoder blanks them instead of showing '0'.
func (d *Dev) ClearDisplay() error {
	for n := 0; n < 8; n++ {
		b := segment.Blank
		if d.decode[n] {
			b = codeBBlank
		}
		if err := d.shiftOut(Digit0+Register(n), b); err != nil {
			return err
		}
	}
	return nil
}

// SetIntensity sets the display brightness. brightness must be in [0,15];
// the brighter the display, the more current it draws.
func (d *Dev) SetIntensity(brightness int) error {
	if brightness < 0 || brightness > 15 {
		return fmt.Errorf("max7219: intensity %d out of range [0,15]", brightness)
	}
	return d.shiftOut(Intensity, byte(brightness))
}

// SetScanLimit sets how many digit positions the chip multiplexes. limit
// must be in [1,8] and is stored on the wire as limit-1.
func (d *Dev) SetScanLimit(limit int) error {
	if limit < 1 || limit > 8 {
		return fmt.Errorf("max7219: scan limit %d out of range [1,8]", limit)
	}
	return d.shiftOut(ScanLimit, byte(limit-1))
}

// Halt blanks the display by entering shutdown mode. It implements
// conn.Resource. The port stays open; use Close to release it.
func (d *Dev) Halt() error {
	return d.Shutdown()
}

// Close releases the active chip's port. Further register writes fail until
// a chip is selected again.
func (d *Dev) Close() error {
	if d.port == nil {
		return nil
	}
	err := d.port.Close()
	d.port = nil
	d.conn = nil
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{chip %d of %d}", d.active, d.chips)
}

// digitRegister maps a digit position 0-7 to its content register.
func digitRegister(n int) (Register, error) {
	if n < 0 || n > 7 {
		return NoOp, fmt.Errorf("max7219: digit %d out of range [0,7]", n)
	}
	return Digit0 + Register(n), nil
}

// frame builds the 2-byte wire frame the chip latches on one transfer.
func frame(reg Register, data byte) []byte {
	return []byte{byte(reg), data}
}

// shiftOut writes one frame to the active chip. The registers are write-only,
// so the receive side of the exchange is discarded.
func (d *Dev) shiftOut(reg Register, data byte) error {
	if d.conn == nil {
		return errors.New("max7219: no open SPI port")
	}
	return d.conn.Tx(frame(reg, data), nil)
}
