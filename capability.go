package verdict

// HashAlgo names a supported digest algorithm for expect.Digest.
type HashAlgo string

const (
	// HashArgon2 verifies Argon2id encoded digests ($argon2id$v=19$m=...).
	HashArgon2 HashAlgo = "argon2"

	// HashBcrypt verifies bcrypt digests ($2a$, $2b$, $2y$).
	HashBcrypt HashAlgo = "bcrypt"

	// HashSHA256 verifies hex-encoded SHA-256 digests.
	// Use for fingerprints and tokens, NOT for passwords.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 verifies hex-encoded SHA-512 digests.
	// Use for fingerprints and tokens, NOT for passwords.
	HashSHA512 HashAlgo = "sha512"
)

// validHashAlgos contains all valid hash algorithms.
var validHashAlgos = map[HashAlgo]bool{
	HashArgon2: true,
	HashBcrypt: true,
	HashSHA256: true,
	HashSHA512: true,
}

// validMaskTypes contains all valid mask types.
var validMaskTypes = map[MaskType]bool{
	MaskRedact: true,
	MaskEmail:  true,
	MaskCard:   true,
	MaskPhone:  true,
	MaskName:   true,
}

// IsValidHashAlgo returns true if the algorithm is a known hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}

// IsValidMaskType returns true if the type is a known mask type.
func IsValidMaskType(mt MaskType) bool {
	return validMaskTypes[mt]
}
