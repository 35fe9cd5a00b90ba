// Package nullifier implements the anti-replay commitment and nullifier
// scheme behind XP claims.
//
// A claim is normalized, salted with a timestamp and nonce, and committed to
// with SHA-256. The commitment is bound to the player through an
// operator-derived secret and folded into a BN254 field element, the
// nullifier. Spending a nullifier at most once is the job of the caller's
// store or verifier contract; this package only produces and checks values.
package nullifier

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Service generates nullifiers. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	now    func() time.Time
	rand   io.Reader
	hasher Hasher
	logger zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for commitment timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand sets the source of commitment nonces.
func WithRand(r io.Reader) Option {
	return func(s *Service) { s.rand = r }
}

// WithHasher selects the nullifier hash scheme.
func WithHasher(h Hasher) Option {
	return func(s *Service) { s.hasher = h }
}

// WithLogger attaches a logger. Secrets are never logged.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// New returns a Service using the wall clock, crypto/rand and DoubleSHA256.
func New(opts ...Option) *Service {
	s := &Service{
		now:    time.Now,
		rand:   rand.Reader,
		hasher: DoubleSHA256,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default is the shared Service behind the package-level functions.
var Default = New()

// Hasher returns the hash scheme in use.
func (s *Service) Hasher() Hasher {
	return s.hasher
}

// GenerateNullifier produces a fresh commitment and nullifier for one claim
// of xp in season by address. secret is the player secret and must be at
// least MinSecretLength characters.
func (s *Service) GenerateNullifier(address string, xp, season int64, secret string) (*Result, error) {
	components, err := NormalizeComponents(address, xp, season)
	if err != nil {
		s.logger.Warn().Err(err).Str("kind", string(KindOf(err))).Msg("rejected claim parameters")
		return nil, err
	}
	if len(secret) < MinSecretLength {
		err := fmt.Errorf("%w: have %d characters, want at least %d", ErrInvalidSecret, len(secret), MinSecretLength)
		s.logger.Warn().Str("kind", string(KindInvalidSecret)).Msg("rejected claim secret")
		return nil, err
	}

	components, err = withFreshness(components, s.now(), s.rand)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read commitment nonce")
		return nil, err
	}

	commitment := ComputeCommitment(components)
	nullifier, nullifierHash, err := DeriveNullifier(s.hasher, commitment, secret)
	if err != nil {
		return nil, err
	}
	if !VerifyNullifierFormat(nullifier) {
		return nil, fmt.Errorf("%w: derived nullifier out of range", ErrInvalidNullifierFormat)
	}

	s.logger.Debug().
		Str("scheme", s.hasher.Name()).
		Str("season", components.Season).
		Str("storage_key", CreateStorageKey(nullifier)).
		Msg("nullifier generated")

	return &Result{
		Nullifier:     nullifier,
		Commitment:    commitment,
		Components:    components,
		NullifierHash: nullifierHash,
	}, nil
}

// Claim runs the full issuing flow for one claim: it derives the player
// secret from masterSecret, generates the nullifier and assembles the proof
// inputs and storage key.
func (s *Service) Claim(address string, xp, season int64, masterSecret string) (*ClaimTicket, error) {
	if len(masterSecret) < MinSecretLength {
		return nil, fmt.Errorf("%w: master secret shorter than %d characters", ErrInvalidSecret, MinSecretLength)
	}

	r, err := s.GenerateNullifier(address, xp, season, GeneratePlayerSecret(address, masterSecret))
	if err != nil {
		return nil, err
	}
	inputs, err := GenerateProofInputs(r, address)
	if err != nil {
		return nil, err
	}

	return &ClaimTicket{
		Nullifier:   r.Nullifier,
		Commitment:  r.Commitment,
		ProofInputs: inputs,
		StorageKey:  CreateStorageKey(r.Nullifier),
		Components:  r.Components,
	}, nil
}

// ValidateProofInputs is the package-level ValidateProofInputs with
// rejections logged.
func (s *Service) ValidateProofInputs(inputs []string) ValidationResult {
	res := ValidateProofInputs(inputs)
	if !res.Valid {
		s.logger.Warn().Str("kind", string(res.Error)).Str("reason", res.Reason).Msg("rejected proof inputs")
	}
	return res
}

// GenerateNullifier calls Default.GenerateNullifier.
func GenerateNullifier(address string, xp, season int64, secret string) (*Result, error) {
	return Default.GenerateNullifier(address, xp, season, secret)
}

// Claim calls Default.Claim.
func Claim(address string, xp, season int64, masterSecret string) (*ClaimTicket, error) {
	return Default.Claim(address, xp, season, masterSecret)
}
