package model

// HashRequest represents a password hashing request.
type HashRequest struct {
	Password string `json:"password"`
}

// HashResponse carries the PHC-encoded Argon2id hash.
type HashResponse struct {
	Hash string `json:"hash"`
}

// VerifyRequest represents a hash verification request.
type VerifyRequest struct {
	Password string `json:"password"`
	Hash     string `json:"hash"`
}

// VerifyResponse reports whether the password matched the hash.
type VerifyResponse struct {
	Match bool `json:"match"`
}
