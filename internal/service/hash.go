package service

import (
	"errors"

	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/crypto"
	"github.com/ParthaPratimBorah/LockForge-PasswordGenerator/internal/model"
)

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrHashRequired     = errors.New("hash is required")
)

// HashService exposes Argon2id hashing as a companion utility, so a
// generated password can be stored somewhere as a hash right away.
type HashService struct {
	hasher *crypto.Hasher
}

// NewHashService creates a new HashService.
func NewHashService(hasher *crypto.Hasher) *HashService {
	return &HashService{hasher: hasher}
}

// Hash derives an Argon2id hash of the request's password.
func (s *HashService) Hash(req model.HashRequest) (model.HashResponse, error) {
	if req.Password == "" {
		return model.HashResponse{}, ErrPasswordRequired
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return model.HashResponse{}, err
	}

	return model.HashResponse{Hash: hash}, nil
}

// Verify checks the request's password against its PHC-encoded hash.
func (s *HashService) Verify(req model.VerifyRequest) (model.VerifyResponse, error) {
	if req.Password == "" {
		return model.VerifyResponse{}, ErrPasswordRequired
	}
	if req.Hash == "" {
		return model.VerifyResponse{}, ErrHashRequired
	}

	match, err := crypto.Verify(req.Password, req.Hash)
	if err != nil {
		return model.VerifyResponse{}, err
	}

	return model.VerifyResponse{Match: match}, nil
}
