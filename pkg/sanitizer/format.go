package sanitizer

// NormalizeEmail trims whitespace and lowercases the address so lookups and
// inserts agree on one canonical form. The local part is otherwise kept as is.
var NormalizeEmail = Compose(Trim, ToLower)
