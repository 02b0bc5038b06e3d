// Package password hashes and verifies user passwords.
//
// BcryptHasher is the default Hasher. Hashes are self-describing bcrypt
// strings, so the cost can be raised later without invalidating stored
// credentials; NeedsRehash tells callers when a stored hash lags behind the
// configured cost.
//
//	h := password.NewBcryptHasher(password.WithCost(12))
//	hash, err := h.Hash("S3cure!pass")
//	ok := h.Verify("S3cure!pass", hash)
//
// Verify never returns an error: a corrupt stored hash only denies
// authentication. The hasher holds no mutable state and is safe for
// concurrent use, so parallel logins hash independently.
package password
