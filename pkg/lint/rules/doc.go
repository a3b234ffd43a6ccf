// Package rules provides the built-in rules for apidirlint.
//
// # Section rules
//
//   - DL001: section-header-format - Header is the anchor, one space, one word
//   - DL002: section-min-entries - Section holds at least min_entries rows
//   - DL003: section-alphabetical - Rows are sorted by uppercased title
//
// # Row rules
//
//   - DL004: row-columns - Row has exactly 6 cells
//   - DL005: cell-spacing - Each cell is padded by exactly one space
//   - DL006: title-no-api - Title does not end with "API"
//   - DL007: description-capitalized - Description starts uppercase
//   - DL008: description-no-punctuation - Description does not end with . ? or !
//   - DL009: auth-backticks - Auth other than "No" is in backticks
//   - DL010: auth-value - Auth is an accepted value
//   - DL011: https-value - HTTPS is Yes or No
//   - DL012: cors-value - CORS is Yes, No, or Unknown
//   - DL013: link-syntax - Link is "[Go!](http...)"
//
// Each rule is documented in docs/<ID>.md, returned by Doc.
//
// Rules register with lint.DefaultRegistry from init. Row rules run in ID
// order, so diagnostics for one row always appear in the order above.
package rules
