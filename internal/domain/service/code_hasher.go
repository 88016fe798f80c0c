package service

// CodeHasher hashes one-time codes for at-rest storage. Only the hash of a
// dispatched code is kept in the challenge store.
type CodeHasher interface {
	// Hash generates a salted hash from a plaintext code.
	Hash(code string) (string, error)

	// Check compares a plaintext code with a stored hash.
	Check(code, hash string) bool
}
