package ansi

import "fmt"

// c0Names holds the mnemonic of every C0 code, indexed by its value.
var c0Names = [...]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// Name returns the mnemonic of control character c.
func Name(c uint8) (string, bool) {
	switch {
	case int(c) < len(c0Names):
		return c0Names[c], true
	case c == C0.DEL:
		return "DEL", true
	}
	return "", false
}

// String describes val for log output.
func String(val uint8) string {
	if name, ok := Name(val); ok {
		return fmt.Sprintf("%s (0x%02X) (%q)", name, val, rune(val))
	}
	return fmt.Sprintf("0x%02X (%q)", val, rune(val))
}
