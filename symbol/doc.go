// Package symbol renders unit symbols and exponents as display strings.
//
// Two notations are supported, selected by a process-wide mode:
//
//   - Unicode (default) — superscript exponent runes appended directly to
//     each symbol: m¹s⁻², kg¹m²s⁻²
//   - ASCII — caret notation with '*' between terms: m^1*s^-2
//
// The mode is read at format time and applies globally; there is no
// per-call override. Set it once at startup (SetNotation) before any
// concurrent use — the package does no locking of its own.
//
// ⚙️ Usage:
//
//	symbol.Exponent(-2)                     // "⁻²"
//	symbol.Format([]symbol.Term{
//	  {Symbol: "m", Exp: 1},
//	  {Symbol: "s", Exp: -1},
//	})                                      // "m¹s⁻¹"
//
//	symbol.SetNotation(symbol.ASCII)
//	symbol.Exponent(-2)                     // "^-2"
package symbol
